// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package cst

import (
	"fmt"

	"github.com/playbymail/vb6parse/internal/lexers"
)

// SyntaxKind is a single flat enumeration over every token kind and
// every grammatical production. Values below productionBase mirror
// lexers.TokenKind one-to-one; KindOf converts.
type SyntaxKind int

const productionBase SyntaxKind = 256

// KindOf returns the SyntaxKind for a token kind.
func KindOf(k lexers.TokenKind) SyntaxKind {
	return SyntaxKind(k)
}

// IsToken reports whether the kind names a token rather than a
// production.
func (k SyntaxKind) IsToken() bool {
	return k < productionBase
}

const (
	// file skeletons
	Root SyntaxKind = productionBase + iota
	VersionStatement
	AttributeStatement
	PropertiesBlock
	Property
	PropertyKey
	PropertyValue

	// declarations
	SubStatement
	FunctionStatement
	PropertyGetStatement
	PropertyLetStatement
	PropertySetStatement
	DimStatement
	ConstStatement
	TypeStatement
	EnumStatement
	OptionStatement

	// control flow
	IfStatement
	SelectCaseStatement
	CaseClause
	ForStatement
	ForEachStatement
	DoStatement
	WhileStatement
	WithStatement
	ExitStatement
	GotoStatement
	OnErrorStatement
	ResumeStatement
	EndStatement
	StopStatement

	// built-in dispatch statements
	AppActivateStatement
	BeepStatement
	ChDirStatement
	ChDriveStatement
	CloseStatement
	FileCopyStatement
	GetStatement
	InputStatement
	KillStatement
	LineInputStatement
	LoadStatement
	MkDirStatement
	NameStatement
	OpenStatement
	PrintStatement
	PutStatement
	RmDirStatement
	SaveSettingStatement
	SeekStatement
	SendKeysStatement
	SetAttrStatement
	UnloadStatement
	WidthStatement
	WriteStatement

	// expressions
	AssignmentStatement
	CallStatement
	CallExpression
	IdentifierExpression
	NumericLiteralExpression
	StringLiteralExpression
	DateLiteralExpression
	KeywordExpression
	ParenthesizedExpression
	ArgumentList
	ParameterList
	BinaryExpression
	UnaryExpression
	MemberAccess

	// structure
	CodeBlock
	StatementList
	BadContent
)

var productionNames = map[SyntaxKind]string{
	Root:                     "Root",
	VersionStatement:         "VersionStatement",
	AttributeStatement:       "AttributeStatement",
	PropertiesBlock:          "PropertiesBlock",
	Property:                 "Property",
	PropertyKey:              "PropertyKey",
	PropertyValue:            "PropertyValue",
	SubStatement:             "SubStatement",
	FunctionStatement:        "FunctionStatement",
	PropertyGetStatement:     "PropertyGetStatement",
	PropertyLetStatement:     "PropertyLetStatement",
	PropertySetStatement:     "PropertySetStatement",
	DimStatement:             "DimStatement",
	ConstStatement:           "ConstStatement",
	TypeStatement:            "TypeStatement",
	EnumStatement:            "EnumStatement",
	OptionStatement:          "OptionStatement",
	IfStatement:              "IfStatement",
	SelectCaseStatement:      "SelectCaseStatement",
	CaseClause:               "CaseClause",
	ForStatement:             "ForStatement",
	ForEachStatement:         "ForEachStatement",
	DoStatement:              "DoStatement",
	WhileStatement:           "WhileStatement",
	WithStatement:            "WithStatement",
	ExitStatement:            "ExitStatement",
	GotoStatement:            "GotoStatement",
	OnErrorStatement:         "OnErrorStatement",
	ResumeStatement:          "ResumeStatement",
	EndStatement:             "EndStatement",
	StopStatement:            "StopStatement",
	AppActivateStatement:     "AppActivateStatement",
	BeepStatement:            "BeepStatement",
	ChDirStatement:           "ChDirStatement",
	ChDriveStatement:         "ChDriveStatement",
	CloseStatement:           "CloseStatement",
	FileCopyStatement:        "FileCopyStatement",
	GetStatement:             "GetStatement",
	InputStatement:           "InputStatement",
	KillStatement:            "KillStatement",
	LineInputStatement:       "LineInputStatement",
	LoadStatement:            "LoadStatement",
	MkDirStatement:           "MkDirStatement",
	NameStatement:            "NameStatement",
	OpenStatement:            "OpenStatement",
	PrintStatement:           "PrintStatement",
	PutStatement:             "PutStatement",
	RmDirStatement:           "RmDirStatement",
	SaveSettingStatement:     "SaveSettingStatement",
	SeekStatement:            "SeekStatement",
	SendKeysStatement:        "SendKeysStatement",
	SetAttrStatement:         "SetAttrStatement",
	UnloadStatement:          "UnloadStatement",
	WidthStatement:           "WidthStatement",
	WriteStatement:           "WriteStatement",
	AssignmentStatement:      "AssignmentStatement",
	CallStatement:            "CallStatement",
	CallExpression:           "CallExpression",
	IdentifierExpression:     "IdentifierExpression",
	NumericLiteralExpression: "NumericLiteralExpression",
	StringLiteralExpression:  "StringLiteralExpression",
	DateLiteralExpression:    "DateLiteralExpression",
	KeywordExpression:        "KeywordExpression",
	ParenthesizedExpression:  "ParenthesizedExpression",
	ArgumentList:             "ArgumentList",
	ParameterList:            "ParameterList",
	BinaryExpression:         "BinaryExpression",
	UnaryExpression:          "UnaryExpression",
	MemberAccess:             "MemberAccess",
	CodeBlock:                "CodeBlock",
	StatementList:            "StatementList",
	BadContent:               "BadContent",
}

func (k SyntaxKind) String() string {
	if k.IsToken() {
		return lexers.TokenKind(k).String()
	}
	if name, ok := productionNames[k]; ok {
		return name
	}
	return fmt.Sprintf("SyntaxKind(%d)", int(k))
}
