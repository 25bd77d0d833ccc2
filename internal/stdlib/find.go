// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package stdlib

import (
	"crypto/sha1"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

type File_t struct {
	Path     string    // directory holding the file
	Name     string    // file name
	Kind     string    // class, module, form, project, resource
	Hash     string    // SHA1 hash of the file contents
	Modified time.Time // last modified time, hopefully always UTC
}

// kindByExtension maps the artifact extensions we care about.
var kindByExtension = map[string]string{
	".cls": "class",
	".bas": "module",
	".frm": "form",
	".vbp": "project",
	".frx": "resource",
}

// FindAllInputs returns a list of all VB6 artifacts in the requested
// path. The list is sorted by modified time and then name.
func FindAllInputs(path string) ([]*File_t, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	var list []*File_t
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		} else if kindByExtension[strings.ToLower(filepath.Ext(entry.Name()))] == "" {
			continue
		}
		item, err := FindInput(path, entry.Name())
		if err != nil {
			return nil, err
		}
		list = append(list, item)
	}
	// sort files by Modified time, then name
	sort.Slice(list, func(i, j int) bool {
		if list[i].Modified.Before(list[j].Modified) {
			return true
		} else if list[i].Modified.Equal(list[j].Modified) {
			return list[i].Name < list[j].Name
		}
		return false
	})
	return list, nil
}

// FindInput returns a *File_t for the input file in the requested
// path that matches the requested name.
func FindInput(path string, name string) (*File_t, error) {
	kind := kindByExtension[strings.ToLower(filepath.Ext(name))]
	if kind == "" {
		return nil, fmt.Errorf("%s: not a vb6 artifact", name)
	}
	item := &File_t{
		Path: path,
		Name: name,
		Kind: kind,
	}
	// verify that the file exists and get the last modified time
	if sb, err := os.Stat(filepath.Join(path, name)); err != nil {
		return nil, err
	} else if sb.IsDir() {
		return nil, fmt.Errorf("file is a directory")
	} else if !sb.Mode().IsRegular() {
		return nil, fmt.Errorf("file is not a regular file")
	} else {
		item.Modified = sb.ModTime().UTC()
	}
	// load and hash the file. return any errors loading or hashing the file.
	if data, err := os.ReadFile(filepath.Join(path, name)); err != nil {
		return nil, err
	} else {
		hashValue := sha1.New()
		hashValue.Write(data)
		item.Hash = fmt.Sprintf("%x", hashValue.Sum(nil))
	}
	return item, nil
}
