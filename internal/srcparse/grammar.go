// Package srcparse is a minimal participle-based front end that turns
// indented source-language text into the internal/ast tree the
// translator core consumes. It exists purely for demos and tests:
// nothing under internal/ast, internal/rewrite, internal/translate, or
// internal/target imports it, and a real deployment is free to supply
// its own parser producing the same §3 AST shape. Grounded on the
// "Program/Block/recursive @@" grammar style and the
// participle.Build[T]/lexer.MustSimple construction used elsewhere in
// the example corpus, adapted here to a Python-like, indentation
// sensitive surface syntax via preprocessIndentation.
package srcparse

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var srcLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "TripleString", Pattern: `"""[\s\S]*?"""`},
	{Name: "String", Pattern: `"[^"\n]*"`},
	{Name: "Num", Pattern: `[0-9]+(\.[0-9]+)?`},
	{Name: "OpMulti", Pattern: `\*\*=|//=|<<=|>>=|\*\*|//|<<|>>|<=|>=|==|!=|\+=|-=|\*=|/=|%=|\|=|\^=|&=|->`},
	{Name: "Punct", Pattern: `[(){}\[\]:,.+\-*/%<>=|^~]`},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
	{Name: "Whitespace", Pattern: `[ \t\r]+`},
})

// Module is the grammar's root production: a flat sequence of
// top-level statements.
type Module struct {
	Pos   lexer.Position
	Stmts []*Statement `@@*`
}

// Statement is a single top-level or nested statement: either a
// compound (block-introducing) form or a simple statement terminated
// by the synthetic NEWLINE keyword.
type Statement struct {
	Pos         lexer.Position
	FunctionDef *FunctionDef `  @@`
	ClassDef    *ClassDef    `| @@`
	If          *IfStmt      `| @@`
	While       *WhileStmt   `| @@`
	For         *ForStmt     `| @@`
	Simple      *SimpleStmt  `| @@ "NEWLINE"`
}

// Param is a single formal parameter: a name, an optional ": Type"
// annotation, and an optional "= default" expression.
type Param struct {
	Name       string  `@Ident`
	Annotation *string `(":" @Ident)?`
	Default    *Expr   `("=" @@)?`
}

// FunctionDef mirrors "def name(params) [-> Ret]:" followed by an
// indented block.
type FunctionDef struct {
	Pos     lexer.Position
	Name    string       `"def" @Ident`
	Params  []*Param     `"(" (@@ ("," @@)*)? ")"`
	Returns *string      `("->" @Ident)?`
	Body    []*Statement `":" "NEWLINE" "INDENT" @@* "DEDENT"`
}

// ClassDef mirrors "class Name(Base, ...):" followed by an indented
// block. Only plain-name base classes are supported by this grammar.
type ClassDef struct {
	Pos   lexer.Position
	Name  string       `"class" @Ident`
	Bases []string     `("(" (@Ident ("," @Ident)*)? ")")?`
	Body  []*Statement `":" "NEWLINE" "INDENT" @@* "DEDENT"`
}

// IfStmt mirrors "if cond:" block ["else:" block]; "elif" is not
// modeled by this demo grammar (write a nested if inside the else
// block instead, the same shape the translator core expects, §4.E).
type IfStmt struct {
	Pos  lexer.Position
	Cond *Expr        `"if" @@ ":" "NEWLINE" "INDENT"`
	Body []*Statement `@@* "DEDENT"`
	Else []*Statement `("else" ":" "NEWLINE" "INDENT" @@* "DEDENT")?`
}

// WhileStmt mirrors "while cond:" block.
type WhileStmt struct {
	Pos  lexer.Position
	Cond *Expr        `"while" @@ ":" "NEWLINE" "INDENT"`
	Body []*Statement `@@* "DEDENT"`
}

// ForStmt mirrors "for name in iter:" block; only a bare name target
// is supported (matching the translator's own forStmt limitation).
type ForStmt struct {
	Pos  lexer.Position
	Var  string       `"for" @Ident "in"`
	Iter *Expr        `@@ ":" "NEWLINE" "INDENT"`
	Body []*Statement `@@* "DEDENT"`
}

// SimpleStmt is any statement that does not introduce a new block.
type SimpleStmt struct {
	Pos      lexer.Position
	Return   *ReturnStmt   `  @@`
	Raise    *RaiseStmt    `| @@`
	Pass     bool          `| @"pass"`
	Break    bool          `| @"break"`
	Continue bool          `| @"continue"`
	Print    *PrintStmt    `| @@`
	Expr     *ExprOrAssign `| @@`
}

// ReturnStmt is "return" with an optional value.
type ReturnStmt struct {
	Value *Expr `"return" @@?`
}

// RaiseStmt is "raise" with an optional exception expression.
type RaiseStmt struct {
	Exc *Expr `"raise" @@?`
}

// PrintStmt is the legacy positional print form; a trailing comma
// marks "no newline" (§4.B rule 4).
type PrintStmt struct {
	Values    []*Expr `"print" (@@ ("," @@)*)?`
	NoNewline bool    `@","?`
}

// ExprOrAssign folds plain expression-statements, assignments, and
// augmented assignments into one production, since they share an
// unbounded common prefix (an Expr) that a PEG grammar cannot
// otherwise disambiguate without backtracking across alternatives.
type ExprOrAssign struct {
	Left  *Expr   `@@`
	Op    *string `( @("="|"+="|"-="|"*="|"/="|"%="|"**="|"//="|"<<="|">>="|"|="|"^="|"&=")`
	Right *Expr   `  @@ )?`
}

// Expr is the ternary level: "body if test else orelse", or a plain
// OrExpr when the "if" tail is absent.
type Expr struct {
	Body   *OrExpr `@@`
	Test   *OrExpr `("if" @@`
	Orelse *Expr   `  "else" @@)?`
}

// OrExpr is a left-to-right chain of "or"-connected AndExpr operands.
type OrExpr struct {
	Left *AndExpr   `@@`
	Rest []*AndExpr `("or" @@)*`
}

// AndExpr is a left-to-right chain of "and"-connected NotExpr operands.
type AndExpr struct {
	Left *NotExpr   `@@`
	Rest []*NotExpr `("and" @@)*`
}

// NotExpr is an optional leading "not" over a comparison.
type NotExpr struct {
	Not   bool        `@"not"?`
	Value *Comparison `@@`
}

// Comparison is a single (non-chained) comparison; the demo grammar
// does not model Python's n-ary chained comparisons.
type Comparison struct {
	Left  *BitExpr `@@`
	Op    *string  `( @("=="|"!="|"<="|">="|"<"|">")`
	Right *BitExpr `  @@ )?`
}

// BitExpr approximates the bitwise-or/xor/and and shift tiers as one
// loosely-precedenced left-to-right chain, a deliberate simplification
// for this test/demo grammar (the translator core itself still
// preserves whatever tree it is handed faithfully).
type BitExpr struct {
	Left *Arith   `@@`
	Ops  []*BitOp `@@*`
}

// BitOp is one operator/operand pair in a BitExpr chain.
type BitOp struct {
	Op    string `@("|"|"^"|"&"|"<<"|">>")`
	Right *Arith `@@`
}

// Arith is the +/- precedence tier.
type Arith struct {
	Left *Term      `@@`
	Ops  []*ArithOp `@@*`
}

// ArithOp is one operator/operand pair in an Arith chain.
type ArithOp struct {
	Op    string `@("+"|"-")`
	Right *Term  `@@`
}

// Term is the * / // % precedence tier; "//" is listed before "/" so
// the lexer's longest non-overlapping match still resolves correctly
// at the grammar level.
type Term struct {
	Left *Factor   `@@`
	Ops  []*TermOp `@@*`
}

// TermOp is one operator/operand pair in a Term chain.
type TermOp struct {
	Op    string  `@("//"|"*"|"/"|"%")`
	Right *Factor `@@`
}

// Factor is a unary +/-/~ applied to a Power.
type Factor struct {
	Op    *string `@("+"|"-"|"~")?`
	Value *Power  `@@`
}

// Power is right-associative exponentiation over an atom-with-trailers.
type Power struct {
	Base *AtomTrailer `@@`
	Exp  *Factor      `("**" @@)?`
}

// AtomTrailer is an atom followed by zero or more attribute/call/index
// trailers.
type AtomTrailer struct {
	Atom     *Atom      `@@`
	Trailers []*Trailer `@@*`
}

// Trailer is one of ".name", "(args)", or "[index]".
type Trailer struct {
	Attr  *string   `(  "." @Ident`
	Call  *CallArgs ` | "(" @@ ")"`
	Index *Expr     ` | "[" @@ "]" )`
}

// CallArgs is a plain positional argument list; keyword and star
// arguments are out of scope for this demo grammar.
type CallArgs struct {
	Args []*Expr `(@@ ("," @@)*)?`
}

// ExprList is a comma-separated expression list, used for list
// literals and parenthesized groups/tuples.
type ExprList struct {
	Items []*Expr `(@@ ("," @@)*)?`
}

// Atom is a single leaf term. Keyword literals (True/False/None) are
// tried before the generic Ident capture so they are not swallowed as
// plain names.
type Atom struct {
	True_  bool      `(  @"True"`
	False_ bool      ` | @"False"`
	None_  bool      ` | @"None"`
	Num    *string   ` | @Num`
	Str    *string   ` | @String`
	Triple *string   ` | @TripleString`
	Name   *string   ` | @Ident`
	List   *ExprList ` | "[" @@ "]"`
	Paren  *ExprList ` | "(" @@ ")" )`
}

// NewParser builds a participle parser for the demo grammar.
func NewParser() (*participle.Parser[Module], error) {
	return participle.Build[Module](
		participle.Lexer(srcLexer),
		participle.UseLookahead(4),
		participle.Elide("Comment", "Whitespace"),
	)
}
