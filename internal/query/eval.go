package query

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"sort"
	"strconv"
	"strings"

	"awshell/pkg/tabular"
)

// Func is a namespace entry: a callable exposed to query expressions.
type Func struct {
	Call func(args []any) (any, error)
	Help string
}

// Env evaluates query expressions against a namespace of functions.
type Env struct {
	funcs map[string]Func
}

// NewEnv builds an environment over the given namespace.
func NewEnv(funcs map[string]Func) *Env {
	return &Env{funcs: funcs}
}

// Names returns the namespace function names, sorted.
func (e *Env) Names() []string {
	names := make([]string, 0, len(e.funcs))
	for name := range e.funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

const methodHelp = `Table methods: .where(field, pattern)  .sort(key)  .sortdesc(key)  .find(keyword)
               .select("path[:Header]", ...)  .json()  .data()  .len()  [i]  [lo:hi]`

// Help returns one line per namespace function plus the method summary.
func (e *Env) Help() string {
	var b strings.Builder
	for _, name := range e.Names() {
		fmt.Fprintf(&b, "%-20s %s\n", name+"()", e.funcs[name].Help)
	}
	b.WriteString("\n" + methodHelp + "\n")
	return b.String()
}

// Eval parses and evaluates one complete expression.
func (e *Env) Eval(src string) (any, error) {
	expr, err := parser.ParseExpr(normalizeSource(src))
	if err != nil {
		return nil, fmt.Errorf("invalid expression: %w", err)
	}
	return e.eval(expr)
}

func (e *Env) eval(node ast.Expr) (any, error) {
	switch n := node.(type) {
	case *ast.ParenExpr:
		return e.eval(n.X)

	case *ast.BasicLit:
		return literal(n)

	case *ast.UnaryExpr:
		if n.Op != token.SUB {
			return nil, fmt.Errorf("unsupported operator %q", n.Op)
		}
		v, err := e.eval(n.X)
		if err != nil {
			return nil, err
		}
		i, ok := v.(int)
		if !ok {
			return nil, fmt.Errorf("cannot negate %T", v)
		}
		return -i, nil

	case *ast.Ident:
		switch n.Name {
		case "true":
			return true, nil
		case "false":
			return false, nil
		case "help":
			return e.Help(), nil
		}
		if _, ok := e.funcs[n.Name]; ok {
			return nil, fmt.Errorf("%s is a function; call it: %s()", n.Name, n.Name)
		}
		return nil, fmt.Errorf("unknown name %q (try help())", n.Name)

	case *ast.CallExpr:
		return e.call(n)

	case *ast.IndexExpr:
		return e.index(n)

	case *ast.SliceExpr:
		return e.slice(n)

	default:
		return nil, fmt.Errorf("unsupported expression %T", node)
	}
}

func (e *Env) call(n *ast.CallExpr) (any, error) {
	args, err := e.evalArgs(n.Args)
	if err != nil {
		return nil, err
	}

	switch fn := n.Fun.(type) {
	case *ast.Ident:
		if fn.Name == "help" && len(args) == 0 {
			return e.Help(), nil
		}
		f, ok := e.funcs[fn.Name]
		if !ok {
			return nil, fmt.Errorf("unknown function %q (try help())", fn.Name)
		}
		return f.Call(args)

	case *ast.SelectorExpr:
		recv, err := e.eval(fn.X)
		if err != nil {
			return nil, err
		}
		return callMethod(recv, fn.Sel.Name, args)

	default:
		return nil, fmt.Errorf("unsupported call target %T", n.Fun)
	}
}

// callMethod dispatches the chainable table methods, case-insensitively.
func callMethod(recv any, name string, args []any) (any, error) {
	t, ok := recv.(*tabular.Table)
	if !ok {
		return nil, fmt.Errorf("cannot call .%s on %T", name, recv)
	}

	method := strings.ToLower(name)
	switch method {
	case "where", "filter":
		field, pattern, err := twoStrings(method, args)
		if err != nil {
			return nil, err
		}
		return t.Where(field, pattern), nil
	case "sort":
		key, err := oneString(method, args)
		if err != nil {
			return nil, err
		}
		return t.Sort(key), nil
	case "sortdesc", "sort_desc":
		key, err := oneString(method, args)
		if err != nil {
			return nil, err
		}
		return t.SortDesc(key), nil
	case "find", "search":
		keyword, err := oneString(method, args)
		if err != nil {
			return nil, err
		}
		return t.Find(keyword), nil
	case "select":
		specs := make([]string, len(args))
		for i, a := range args {
			s, ok := a.(string)
			if !ok {
				return nil, fmt.Errorf("select expects string arguments, got %T", a)
			}
			specs[i] = s
		}
		return t.Select(specs...), nil
	case "json":
		if len(args) != 0 {
			return nil, fmt.Errorf("json takes no arguments")
		}
		return t.JSON(), nil
	case "len", "count":
		if len(args) != 0 {
			return nil, fmt.Errorf("%s takes no arguments", method)
		}
		return t.Len(), nil
	case "data":
		if len(args) != 0 {
			return nil, fmt.Errorf("data takes no arguments")
		}
		return t.Data(), nil
	case "help":
		return methodHelp, nil
	default:
		return nil, fmt.Errorf("unknown method %q", name)
	}
}

func (e *Env) index(n *ast.IndexExpr) (any, error) {
	recv, err := e.eval(n.X)
	if err != nil {
		return nil, err
	}
	t, ok := recv.(*tabular.Table)
	if !ok {
		return nil, fmt.Errorf("cannot index %T", recv)
	}
	idx, err := e.evalInt(n.Index)
	if err != nil {
		return nil, err
	}
	if idx < 0 {
		idx += t.Len()
	}
	return t.At(idx)
}

func (e *Env) slice(n *ast.SliceExpr) (any, error) {
	recv, err := e.eval(n.X)
	if err != nil {
		return nil, err
	}
	t, ok := recv.(*tabular.Table)
	if !ok {
		return nil, fmt.Errorf("cannot slice %T", recv)
	}

	lo, hi := 0, t.Len()
	if n.Low != nil {
		if lo, err = e.evalInt(n.Low); err != nil {
			return nil, err
		}
	}
	if n.High != nil {
		if hi, err = e.evalInt(n.High); err != nil {
			return nil, err
		}
	}
	if lo < 0 {
		lo += t.Len()
	}
	if hi < 0 {
		hi += t.Len()
	}
	return t.Slice(lo, hi), nil
}

func (e *Env) evalArgs(exprs []ast.Expr) ([]any, error) {
	args := make([]any, len(exprs))
	for i, expr := range exprs {
		v, err := e.eval(expr)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return args, nil
}

func (e *Env) evalInt(expr ast.Expr) (int, error) {
	v, err := e.eval(expr)
	if err != nil {
		return 0, err
	}
	i, ok := v.(int)
	if !ok {
		return 0, fmt.Errorf("expected integer, got %T", v)
	}
	return i, nil
}

func literal(n *ast.BasicLit) (any, error) {
	switch n.Kind {
	case token.STRING:
		return strconv.Unquote(n.Value)
	case token.INT:
		return strconv.Atoi(n.Value)
	default:
		return nil, fmt.Errorf("unsupported literal %s", n.Value)
	}
}

func oneString(method string, args []any) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("%s expects one string argument", method)
	}
	s, ok := args[0].(string)
	if !ok {
		return "", fmt.Errorf("%s expects a string, got %T", method, args[0])
	}
	return s, nil
}

func twoStrings(method string, args []any) (string, string, error) {
	if len(args) != 2 {
		return "", "", fmt.Errorf("%s expects two string arguments", method)
	}
	a, okA := args[0].(string)
	b, okB := args[1].(string)
	if !okA || !okB {
		return "", "", fmt.Errorf("%s expects string arguments", method)
	}
	return a, b, nil
}
