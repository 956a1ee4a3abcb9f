package routescan

import (
	"context"
	"fmt"
	"sort"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/rust"

	"github.com/Alia5/routecov/internal/endpoint"
)

// TreeSitterExtractor finds route and nest calls in the Rust syntax tree
// instead of the raw text. Calls that only appear in comments or string
// literals are ignored. Literal decoding and method/module matching are
// shared with TextExtractor.
type TreeSitterExtractor struct{}

func (TreeSitterExtractor) Extract(src SourceFile) (*ParsedFile, error) {
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(rust.GetLanguage())
	tree, err := parser.ParseCtx(context.Background(), nil, src.Text)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", src.Path, err)
	}
	defer tree.Close()

	var calls []methodCall
	walkCalls(tree.RootNode(), src.Text, func(c methodCall) { calls = append(calls, c) })
	// A method chain nests its calls outside-in; restore source order.
	sort.SliceStable(calls, func(i, j int) bool { return calls[i].pos < calls[j].pos })

	parsed := &ParsedFile{Endpoints: endpoint.NewSet()}
	for _, c := range calls {
		if c.name == "route" {
			addRoute(parsed, c.first, c.rest)
		}
	}
	for _, c := range calls {
		if c.name == "nest" {
			addNest(parsed, c.first, c.rest)
		}
	}
	return parsed, nil
}

// methodCall is a `<expr>.<name>(first, rest...)` call.
type methodCall struct {
	name  string
	first string // text of the first argument
	rest  string // text of the remaining arguments
	pos   uint32 // byte offset of the method name
}

func walkCalls(n *sitter.Node, text []byte, visit func(methodCall)) {
	if n.Type() == "call_expression" {
		if c, ok := splitMethodCall(n, text); ok {
			visit(c)
		}
	}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		walkCalls(n.NamedChild(i), text, visit)
	}
}

func splitMethodCall(call *sitter.Node, text []byte) (methodCall, bool) {
	fn := call.ChildByFieldName("function")
	if fn == nil || fn.Type() != "field_expression" {
		return methodCall{}, false
	}
	field := fn.ChildByFieldName("field")
	if field == nil {
		return methodCall{}, false
	}
	args := call.ChildByFieldName("arguments")
	if args == nil {
		return methodCall{}, false
	}

	var argNodes []*sitter.Node
	for i := 0; i < int(args.NamedChildCount()); i++ {
		c := args.NamedChild(i)
		switch c.Type() {
		case "line_comment", "block_comment":
			continue
		}
		argNodes = append(argNodes, c)
	}
	if len(argNodes) < 2 || argNodes[0].Type() != "string_literal" {
		return methodCall{}, false
	}

	rest := string(text[argNodes[0].EndByte() : args.EndByte()-1])
	rest = strings.TrimLeft(rest, " \t\r\n")
	return methodCall{
		name:  field.Content(text),
		first: argNodes[0].Content(text),
		rest:  strings.TrimPrefix(rest, ","),
		pos:   field.StartByte(),
	}, true
}
