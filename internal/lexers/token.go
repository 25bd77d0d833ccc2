// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package lexers

import (
	"fmt"
	"strings"

	"github.com/playbymail/vb6parse/internal/diagnostics"
	"github.com/playbymail/vb6parse/internal/sources"
)

// TokenKind classifies one token. Trivia (whitespace, comments, line
// continuations) and newlines are ordinary tokens; the concatenation
// of every token's text reproduces the source exactly.
type TokenKind int

const (
	EOF TokenKind = iota

	// trivia and line breaks
	Whitespace
	Newline
	LineContinuation
	Comment

	// literals
	Identifier
	IntegerLiteral
	LongLiteral
	SingleLiteral
	DoubleLiteral
	CurrencyLiteral
	OctalLiteral
	HexLiteral
	StringLiteral
	DateLiteral

	// operators and punctuation
	LeftParenthesis
	RightParenthesis
	Comma
	Colon
	Semicolon
	Period
	EqualOperator
	NotEqualOperator
	LessThanOperator
	GreaterThanOperator
	LessThanEqualOperator
	GreaterThanEqualOperator
	AdditionOperator
	SubtractionOperator
	MultiplicationOperator
	DivisionOperator
	BackslashOperator
	ExponentOperator
	Ampersand
	DollarSign
	PercentSign
	ExclamationMark
	Octothorpe
	AtSign

	BadToken

	// keywords; keep keywordFirst/keywordLast in sync
	AndKeyword
	AppActivateKeyword
	AsKeyword
	BeepKeyword
	ByRefKeyword
	ByValKeyword
	CaseKeyword
	ChDirKeyword
	ChDriveKeyword
	CloseKeyword
	ConstKeyword
	DimKeyword
	DoKeyword
	EachKeyword
	ElseIfKeyword
	ElseKeyword
	EmptyKeyword
	EndKeyword
	EnumKeyword
	EqvKeyword
	ErrorKeyword
	ExitKeyword
	ExplicitKeyword
	FalseKeyword
	FileCopyKeyword
	ForKeyword
	FriendKeyword
	FunctionKeyword
	GetAttrKeyword
	GetKeyword
	GetSettingKeyword
	GoToKeyword
	IfKeyword
	ImpKeyword
	InKeyword
	InputKeyword
	IsKeyword
	KillKeyword
	LetKeyword
	LikeKeyword
	LoadKeyword
	LoopKeyword
	MeKeyword
	MkDirKeyword
	ModKeyword
	NameKeyword
	NewKeyword
	NextKeyword
	NothingKeyword
	NotKeyword
	NullKeyword
	OnKeyword
	OpenKeyword
	OptionalKeyword
	OptionKeyword
	OrKeyword
	ParamArrayKeyword
	PrintKeyword
	PrivateKeyword
	PropertyKeyword
	PublicKeyword
	PutKeyword
	ReDimKeyword
	RemKeyword
	ResumeKeyword
	RmDirKeyword
	SaveSettingKeyword
	SeekKeyword
	SelectKeyword
	SendKeysKeyword
	SetAttrKeyword
	SetKeyword
	StaticKeyword
	StepKeyword
	StopKeyword
	SubKeyword
	ThenKeyword
	ToKeyword
	TrueKeyword
	TypeKeyword
	UnloadKeyword
	WendKeyword
	WhileKeyword
	WidthKeyword
	WithKeyword
	WriteKeyword
	XorKeyword

	keywordFirst = AndKeyword
	keywordLast  = XorKeyword
)

var kindNames = map[TokenKind]string{
	EOF:                      "EOF",
	Whitespace:               "Whitespace",
	Newline:                  "Newline",
	LineContinuation:         "LineContinuation",
	Comment:                  "Comment",
	Identifier:               "Identifier",
	IntegerLiteral:           "IntegerLiteral",
	LongLiteral:              "LongLiteral",
	SingleLiteral:            "SingleLiteral",
	DoubleLiteral:            "DoubleLiteral",
	CurrencyLiteral:          "CurrencyLiteral",
	OctalLiteral:             "OctalLiteral",
	HexLiteral:               "HexLiteral",
	StringLiteral:            "StringLiteral",
	DateLiteral:              "DateLiteral",
	LeftParenthesis:          "LeftParenthesis",
	RightParenthesis:         "RightParenthesis",
	Comma:                    "Comma",
	Colon:                    "Colon",
	Semicolon:                "Semicolon",
	Period:                   "Period",
	EqualOperator:            "EqualOperator",
	NotEqualOperator:         "NotEqualOperator",
	LessThanOperator:         "LessThanOperator",
	GreaterThanOperator:      "GreaterThanOperator",
	LessThanEqualOperator:    "LessThanEqualOperator",
	GreaterThanEqualOperator: "GreaterThanEqualOperator",
	AdditionOperator:         "AdditionOperator",
	SubtractionOperator:      "SubtractionOperator",
	MultiplicationOperator:   "MultiplicationOperator",
	DivisionOperator:         "DivisionOperator",
	BackslashOperator:        "BackslashOperator",
	ExponentOperator:         "ExponentOperator",
	Ampersand:                "Ampersand",
	DollarSign:               "DollarSign",
	PercentSign:              "PercentSign",
	ExclamationMark:          "ExclamationMark",
	Octothorpe:               "Octothorpe",
	AtSign:                   "AtSign",
	BadToken:                 "BadToken",
	AndKeyword:               "AndKeyword",
	AppActivateKeyword:       "AppActivateKeyword",
	AsKeyword:                "AsKeyword",
	BeepKeyword:              "BeepKeyword",
	ByRefKeyword:             "ByRefKeyword",
	ByValKeyword:             "ByValKeyword",
	CaseKeyword:              "CaseKeyword",
	ChDirKeyword:             "ChDirKeyword",
	ChDriveKeyword:           "ChDriveKeyword",
	CloseKeyword:             "CloseKeyword",
	ConstKeyword:             "ConstKeyword",
	DimKeyword:               "DimKeyword",
	DoKeyword:                "DoKeyword",
	EachKeyword:              "EachKeyword",
	ElseIfKeyword:            "ElseIfKeyword",
	ElseKeyword:              "ElseKeyword",
	EmptyKeyword:             "EmptyKeyword",
	EndKeyword:               "EndKeyword",
	EnumKeyword:              "EnumKeyword",
	EqvKeyword:               "EqvKeyword",
	ErrorKeyword:             "ErrorKeyword",
	ExitKeyword:              "ExitKeyword",
	ExplicitKeyword:          "ExplicitKeyword",
	FalseKeyword:             "FalseKeyword",
	FileCopyKeyword:          "FileCopyKeyword",
	ForKeyword:               "ForKeyword",
	FriendKeyword:            "FriendKeyword",
	FunctionKeyword:          "FunctionKeyword",
	GetAttrKeyword:           "GetAttrKeyword",
	GetKeyword:               "GetKeyword",
	GetSettingKeyword:        "GetSettingKeyword",
	GoToKeyword:              "GoToKeyword",
	IfKeyword:                "IfKeyword",
	ImpKeyword:               "ImpKeyword",
	InKeyword:                "InKeyword",
	InputKeyword:             "InputKeyword",
	IsKeyword:                "IsKeyword",
	KillKeyword:              "KillKeyword",
	LetKeyword:               "LetKeyword",
	LikeKeyword:              "LikeKeyword",
	LoadKeyword:              "LoadKeyword",
	LoopKeyword:              "LoopKeyword",
	MeKeyword:                "MeKeyword",
	MkDirKeyword:             "MkDirKeyword",
	ModKeyword:               "ModKeyword",
	NameKeyword:              "NameKeyword",
	NewKeyword:               "NewKeyword",
	NextKeyword:              "NextKeyword",
	NothingKeyword:           "NothingKeyword",
	NotKeyword:               "NotKeyword",
	NullKeyword:              "NullKeyword",
	OnKeyword:                "OnKeyword",
	OpenKeyword:              "OpenKeyword",
	OptionalKeyword:          "OptionalKeyword",
	OptionKeyword:            "OptionKeyword",
	OrKeyword:                "OrKeyword",
	ParamArrayKeyword:        "ParamArrayKeyword",
	PrintKeyword:             "PrintKeyword",
	PrivateKeyword:           "PrivateKeyword",
	PropertyKeyword:          "PropertyKeyword",
	PublicKeyword:            "PublicKeyword",
	PutKeyword:               "PutKeyword",
	ReDimKeyword:             "ReDimKeyword",
	RemKeyword:               "RemKeyword",
	ResumeKeyword:            "ResumeKeyword",
	RmDirKeyword:             "RmDirKeyword",
	SaveSettingKeyword:       "SaveSettingKeyword",
	SeekKeyword:              "SeekKeyword",
	SelectKeyword:            "SelectKeyword",
	SendKeysKeyword:          "SendKeysKeyword",
	SetAttrKeyword:           "SetAttrKeyword",
	SetKeyword:               "SetKeyword",
	StaticKeyword:            "StaticKeyword",
	StepKeyword:              "StepKeyword",
	StopKeyword:              "StopKeyword",
	SubKeyword:               "SubKeyword",
	ThenKeyword:              "ThenKeyword",
	ToKeyword:                "ToKeyword",
	TrueKeyword:              "TrueKeyword",
	TypeKeyword:              "TypeKeyword",
	UnloadKeyword:            "UnloadKeyword",
	WendKeyword:              "WendKeyword",
	WhileKeyword:             "WhileKeyword",
	WidthKeyword:             "WidthKeyword",
	WithKeyword:              "WithKeyword",
	WriteKeyword:             "WriteKeyword",
	XorKeyword:               "XorKeyword",
}

func (tk TokenKind) String() string {
	if name, ok := kindNames[tk]; ok {
		return name
	}
	return fmt.Sprintf("TokenKind(%d)", int(tk))
}

// IsKeyword returns true for reserved-word kinds.
func (tk TokenKind) IsKeyword() bool {
	return keywordFirst <= tk && tk <= keywordLast
}

// IsTrivia returns true for tokens whose removal would change
// formatting but not semantics. Newline is not trivia: it ends a
// statement.
func (tk TokenKind) IsTrivia() bool {
	switch tk {
	case Whitespace, LineContinuation, Comment:
		return true
	default:
		return false
	}
}

// keywords maps the lower-cased reserved words to their kinds.
// Matching is case-insensitive; the token text keeps the source casing.
var keywords = map[string]TokenKind{
	"and":         AndKeyword,
	"appactivate": AppActivateKeyword,
	"as":          AsKeyword,
	"beep":        BeepKeyword,
	"byref":       ByRefKeyword,
	"byval":       ByValKeyword,
	"case":        CaseKeyword,
	"chdir":       ChDirKeyword,
	"chdrive":     ChDriveKeyword,
	"close":       CloseKeyword,
	"const":       ConstKeyword,
	"dim":         DimKeyword,
	"do":          DoKeyword,
	"each":        EachKeyword,
	"elseif":      ElseIfKeyword,
	"else":        ElseKeyword,
	"empty":       EmptyKeyword,
	"end":         EndKeyword,
	"enum":        EnumKeyword,
	"eqv":         EqvKeyword,
	"error":       ErrorKeyword,
	"exit":        ExitKeyword,
	"explicit":    ExplicitKeyword,
	"false":       FalseKeyword,
	"filecopy":    FileCopyKeyword,
	"for":         ForKeyword,
	"friend":      FriendKeyword,
	"function":    FunctionKeyword,
	"getattr":     GetAttrKeyword,
	"get":         GetKeyword,
	"getsetting":  GetSettingKeyword,
	"goto":        GoToKeyword,
	"if":          IfKeyword,
	"imp":         ImpKeyword,
	"in":          InKeyword,
	"input":       InputKeyword,
	"is":          IsKeyword,
	"kill":        KillKeyword,
	"let":         LetKeyword,
	"like":        LikeKeyword,
	"load":        LoadKeyword,
	"loop":        LoopKeyword,
	"me":          MeKeyword,
	"mkdir":       MkDirKeyword,
	"mod":         ModKeyword,
	"name":        NameKeyword,
	"new":         NewKeyword,
	"next":        NextKeyword,
	"nothing":     NothingKeyword,
	"not":         NotKeyword,
	"null":        NullKeyword,
	"on":          OnKeyword,
	"open":        OpenKeyword,
	"optional":    OptionalKeyword,
	"option":      OptionKeyword,
	"or":          OrKeyword,
	"paramarray":  ParamArrayKeyword,
	"print":       PrintKeyword,
	"private":     PrivateKeyword,
	"property":    PropertyKeyword,
	"public":      PublicKeyword,
	"put":         PutKeyword,
	"redim":       ReDimKeyword,
	"rem":         RemKeyword,
	"resume":      ResumeKeyword,
	"rmdir":       RmDirKeyword,
	"savesetting": SaveSettingKeyword,
	"seek":        SeekKeyword,
	"select":      SelectKeyword,
	"sendkeys":    SendKeysKeyword,
	"setattr":     SetAttrKeyword,
	"set":         SetKeyword,
	"static":      StaticKeyword,
	"step":        StepKeyword,
	"stop":        StopKeyword,
	"sub":         SubKeyword,
	"then":        ThenKeyword,
	"to":          ToKeyword,
	"true":        TrueKeyword,
	"type":        TypeKeyword,
	"unload":      UnloadKeyword,
	"wend":        WendKeyword,
	"while":       WhileKeyword,
	"width":       WidthKeyword,
	"with":        WithKeyword,
	"write":       WriteKeyword,
	"xor":         XorKeyword,
}

// LookupKeyword returns the keyword kind for word, if it is reserved.
func LookupKeyword(word string) (TokenKind, bool) {
	kind, ok := keywords[strings.ToLower(word)]
	return kind, ok
}

// Token is one lexeme. Text is a slice of the source content, so
// concatenating every token's text reproduces the input exactly.
type Token struct {
	Kind TokenKind
	Span diagnostics.Span
	Text string
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)", t.Kind, t.Text)
}

// TokenStream is a finite, restartable sequence of tokens over one
// source file.
type TokenStream struct {
	File   *sources.SourceFile
	Tokens []Token
}
