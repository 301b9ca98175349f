package token

// Tokenizer interface defines the method for tokenizing input strings.
type Tokenizer interface {
	Tokenize(input string) (*List, error)
}

// Validator checks the structure of a token sequence.
type Validator interface {
	Validate(tokens *List) error
}
