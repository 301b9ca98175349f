package token

import "fmt"

// Kind is the lexical category of a token.
type Kind int

const (
	KindNone Kind = iota
	KindLiteral
	KindOperator
	KindGroup
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "NONE"
	case KindLiteral:
		return "LITERAL"
	case KindOperator:
		return "OPERATOR"
	case KindGroup:
		return "GROUP"
	default:
		return "UNKNOWN"
	}
}

// Type is the concrete token type within its Kind.
type Type int

const (
	NONE Type = iota

	// Literals
	INTEGER
	FLOAT

	// Operators
	PLUS
	MINUS
	STAR
	SLASH
	MOD

	// Grouping
	LPAREN
	RPAREN
)

func (t Type) String() string {
	switch t {
	case NONE:
		return "NONE"
	case INTEGER:
		return "INTEGER"
	case FLOAT:
		return "FLOAT"
	case PLUS:
		return "PLUS"
	case MINUS:
		return "MINUS"
	case STAR:
		return "STAR"
	case SLASH:
		return "SLASH"
	case MOD:
		return "MOD"
	case LPAREN:
		return "LPAREN"
	case RPAREN:
		return "RPAREN"
	default:
		return "UNKNOWN"
	}
}

// Kind reports the lexical category a type belongs to.
func (t Type) Kind() Kind {
	switch t {
	case INTEGER, FLOAT:
		return KindLiteral
	case PLUS, MINUS, STAR, SLASH, MOD:
		return KindOperator
	case LPAREN, RPAREN:
		return KindGroup
	default:
		return KindNone
	}
}

// Role is the arity of an operator.
type Role int

const (
	RoleNone Role = iota
	RoleUnary
	RoleBinary
)

func (r Role) String() string {
	switch r {
	case RoleNone:
		return "NONE"
	case RoleUnary:
		return "UNARY"
	case RoleBinary:
		return "BINARY"
	default:
		return "UNKNOWN"
	}
}

// Association is the tie-break rule for operators of equal precedence.
type Association int

const (
	AssocNone Association = iota
	AssocLeft
	AssocRight
)

func (a Association) String() string {
	switch a {
	case AssocNone:
		return "NONE"
	case AssocLeft:
		return "LEFT"
	case AssocRight:
		return "RIGHT"
	default:
		return "UNKNOWN"
	}
}

// Precedence ranks operators. Higher binds tighter.
type Precedence int

const (
	PrecedenceError Precedence = iota - 1
	PrecedenceNone
	PrecedenceAdditive
	PrecedenceMultiplicative
	PrecedenceUnary
)

func (p Precedence) String() string {
	switch p {
	case PrecedenceError:
		return "ERROR"
	case PrecedenceNone:
		return "NONE"
	case PrecedenceAdditive:
		return "ADDITIVE"
	case PrecedenceMultiplicative:
		return "MULTIPLICATIVE"
	case PrecedenceUnary:
		return "UNARY"
	default:
		return "UNKNOWN"
	}
}

// Token is a classified lexical unit. Tokens are values: copying one
// yields an independent token, so a List never shares state with its caller.
type Token struct {
	Kind        Kind
	Type        Type
	Role        Role
	Precedence  Precedence
	Association Association
	Lexeme      string
}

// Len is the byte length of the lexeme, used to advance the scan cursor.
func (t Token) Len() int {
	return len(t.Lexeme)
}

// Clone returns a copy of t. Strings are immutable, so the copy owns
// its lexeme as much as the original does.
func (t Token) Clone() Token {
	return t
}

// AsUnary returns t reclassified as a unary operator. Non-operators are
// returned unchanged.
func (t Token) AsUnary() Token {
	if t.Kind != KindOperator {
		return t
	}
	t.Role = RoleUnary
	t.Association = AssocRight
	t.Precedence = PrecedenceOf(&t)
	return t
}

func (t Token) IsLiteral() bool  { return t.Kind == KindLiteral && t.Type.Kind() == KindLiteral }
func (t Token) IsOperator() bool { return t.Kind == KindOperator && t.Type.Kind() == KindOperator }
func (t Token) IsGroup() bool    { return t.Kind == KindGroup && t.Type.Kind() == KindGroup }

func (t Token) IsLeftParen() bool  { return t.Type == LPAREN }
func (t Token) IsRightParen() bool { return t.Type == RPAREN }

func (t Token) IsUnary() bool  { return t.Role == RoleUnary }
func (t Token) IsBinary() bool { return t.Role == RoleBinary }

func (t Token) IsLeftAssoc() bool  { return t.Association == AssocLeft }
func (t Token) IsRightAssoc() bool { return t.Association == AssocRight }

// IsSign reports whether t can lead a unary expression.
func (t Token) IsSign() bool {
	return t.Type == PLUS || t.Type == MINUS
}

func (t Token) String() string {
	return fmt.Sprintf("lexeme='%s', size=%d, type=%s, kind=%s, role=%s, assoc=%s, prec=%s",
		t.Lexeme, t.Len(), t.Type, t.Kind, t.Role, t.Association, t.Precedence)
}

// PrecedenceOf is the precedence table. It returns PrecedenceError for a nil
// token or one whose fields disagree with each other.
func PrecedenceOf(t *Token) Precedence {
	if t == nil || t.Lexeme == "" || t.Kind != t.Type.Kind() {
		return PrecedenceError
	}

	switch t.Type {
	case PLUS, MINUS, STAR, SLASH, MOD:
		if t.Role == RoleUnary {
			return PrecedenceUnary
		}
	}

	switch t.Type {
	case PLUS, MINUS:
		return PrecedenceAdditive
	case STAR, SLASH, MOD:
		return PrecedenceMultiplicative
	default:
		return PrecedenceNone
	}
}
