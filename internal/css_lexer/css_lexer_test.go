package css_lexer

import (
	"testing"

	"github.com/vladinator1000/cssselect/internal/logger"
)

func lexToken(contents string) (T, string) {
	log := logger.NewDeferLog()
	result := Tokenize(log, "<test>", contents)
	if len(result.Tokens) > 0 {
		tok := result.Tokens[0]
		return tok.Kind, tok.DecodedText(contents)
	}
	return TEndOfFile, ""
}

func TestTokens(t *testing.T) {
	expected := []struct {
		contents string
		token    T
		text     string
	}{
		{"", TEndOfFile, ""},
		{"ident", TIdent, "ident"},
		{"-ident", TIdent, "-ident"},
		{"--custom", TIdent, "--custom"},
		{"func(", TFunction, "func"},
		{"#id", THash, "id"},
		{"123", TNumber, "123"},
		{"12.5", TNumber, "12.5"},
		{"50%", TPercentage, "50%"},
		{"1px", TDimension, "1px"},
		{`"str"`, TString, "str"},
		{`'str'`, TString, "str"},
		{",", TComma, ","},
		{":", TColon, ":"},
		{";", TSemicolon, ";"},
		{"(", TOpenParen, "("},
		{")", TCloseParen, ")"},
		{"[", TOpenBracket, "["},
		{"]", TCloseBracket, "]"},
		{"{", TOpenBrace, "{"},
		{"}", TCloseBrace, "}"},
		{"&", TDelimAmpersand, "&"},
		{"*", TDelimAsterisk, "*"},
		{"|", TDelimBar, "|"},
		{"^", TDelimCaret, "^"},
		{"$", TDelimDollar, "$"},
		{".", TDelimDot, "."},
		{"=", TDelimEquals, "="},
		{">", TDelimGreaterThan, ">"},
		{"-", TDelimMinus, "-"},
		{"+", TDelimPlus, "+"},
		{"/", TDelimSlash, "/"},
		{"~", TDelimTilde, "~"},
		{" \t\n", TWhitespace, " \t\n"},
		{`"unterminated`, TBadString, `"unterminated`},
	}

	for _, it := range expected {
		it := it
		t.Run(it.contents, func(t *testing.T) {
			kind, text := lexToken(it.contents)
			if kind != it.token {
				t.Fatalf("token: expected %s, got %s", it.token, kind)
			}
			if text != it.text {
				t.Fatalf("text: expected %q, got %q", it.text, text)
			}
		})
	}
}

func TestEscapes(t *testing.T) {
	_, text := lexToken(`\69 dent`)
	if text != "ident" {
		t.Fatalf("expected escaped ident to decode to %q, got %q", "ident", text)
	}
}

func TestComments(t *testing.T) {
	kind, text := lexToken("/* comment */ident")
	if kind != TIdent {
		t.Fatalf("expected a comment to be skipped without producing a token, got %s", kind)
	}
	if text != "ident" {
		t.Fatalf("expected the token after the comment to be %q, got %q", "ident", text)
	}
}

func TestAllTokensStringify(t *testing.T) {
	for kind := TEndOfFile; kind <= TWhitespace; kind++ {
		if kind.String() == "" {
			t.Fatalf("token kind %d has no string representation", kind)
		}
	}
}
