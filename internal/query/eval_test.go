package query

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"awshell/pkg/tabular"
)

func testEnv() *Env {
	items := tabular.NewRecords([]tabular.Record{
		{"InstanceId": "i-aaa111", "State": map[string]any{"Name": "running"}, "Name": "web-1"},
		{"InstanceId": "i-bbb222", "State": map[string]any{"Name": "stopped"}, "Name": "web-2"},
		{"InstanceId": "i-ccc333", "State": map[string]any{"Name": "running"}, "Name": "batch-1"},
	})
	return NewEnv(map[string]Func{
		"instances": {
			Help: "test instances",
			Call: func(args []any) (any, error) {
				if len(args) != 0 {
					return nil, fmt.Errorf("takes no arguments")
				}
				return items, nil
			},
		},
	})
}

func evalTable(t *testing.T, env *Env, src string) *tabular.Table {
	t.Helper()
	v, err := env.Eval(src)
	require.NoError(t, err)
	table, ok := v.(*tabular.Table)
	require.True(t, ok, "expected table, got %T", v)
	return table
}

func TestEvalNamespaceCall(t *testing.T) {
	table := evalTable(t, testEnv(), `instances()`)
	assert.Equal(t, 3, table.Len())
}

func TestEvalChainedWhere(t *testing.T) {
	table := evalTable(t, testEnv(), `instances().where("State.Name", "running")`)
	assert.Equal(t, 2, table.Len())
}

func TestEvalChainedWhereSortSelect(t *testing.T) {
	table := evalTable(t, testEnv(),
		`instances().where("Name", "web*").sort("Name").select("InstanceId:ID", "Name")`)
	assert.Equal(t, 2, table.Len())
	require.Len(t, table.Columns(), 2)
	assert.Equal(t, "ID", table.Columns()[0].Header)
}

func TestEvalLowercaseSelect(t *testing.T) {
	// select is a Go keyword, so the lowercase spelling only works
	// through the source rewrite.
	table := evalTable(t, testEnv(), `instances().select("Name")`)
	require.Len(t, table.Columns(), 1)
	assert.Equal(t, "Name", table.Columns()[0].Header)

	// The rewrite is token-aware: the word inside a string stays put.
	v, err := testEnv().Eval(`instances().find("select")`)
	require.NoError(t, err)
	assert.Equal(t, 0, v.(*tabular.Table).Len())
}

func TestEvalMethodsAreCaseInsensitive(t *testing.T) {
	table := evalTable(t, testEnv(), `instances().Where("State.Name", "running").SortDesc("Name")`)
	assert.Equal(t, 2, table.Len())
}

func TestEvalFind(t *testing.T) {
	table := evalTable(t, testEnv(), `instances().find("batch")`)
	assert.Equal(t, 1, table.Len())
}

func TestEvalLenAndJSON(t *testing.T) {
	env := testEnv()

	n, err := env.Eval(`instances().len()`)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	j, err := env.Eval(`instances().where("Name", "batch*").json()`)
	require.NoError(t, err)
	assert.Contains(t, j.(string), "i-ccc333")
}

func TestEvalDataAndBooleans(t *testing.T) {
	env := testEnv()

	v, err := env.Eval(`instances().data()`)
	require.NoError(t, err)
	assert.Len(t, v.([]any), 3)

	v, err = env.Eval(`true`)
	require.NoError(t, err)
	assert.Equal(t, true, v)

	v, err = env.Eval(`instances().help()`)
	require.NoError(t, err)
	assert.Contains(t, v.(string), ".where(")
}

func TestEvalIndexing(t *testing.T) {
	env := testEnv()

	v, err := env.Eval(`instances().sort("Name")[0]`)
	require.NoError(t, err)
	rec, ok := v.(tabular.Record)
	require.True(t, ok)
	assert.Equal(t, "batch-1", rec["Name"])

	v, err = env.Eval(`instances().sort("Name")[-1]`)
	require.NoError(t, err)
	assert.Equal(t, "web-2", v.(tabular.Record)["Name"])

	_, err = env.Eval(`instances()[99]`)
	assert.Error(t, err)
}

func TestEvalSlicing(t *testing.T) {
	env := testEnv()

	table := evalTable(t, env, `instances()[1:3]`)
	assert.Equal(t, 2, table.Len())

	table = evalTable(t, env, `instances()[:2]`)
	assert.Equal(t, 2, table.Len())

	table = evalTable(t, env, `instances()[1:]`)
	assert.Equal(t, 2, table.Len())
}

func TestEvalErrors(t *testing.T) {
	env := testEnv()

	cases := map[string]string{
		`nothing()`:                     "unknown function",
		`instances`:                     "call it",
		`mystery`:                       "unknown name",
		`instances().explode()`:         "unknown method",
		`instances().where("only-one")`: "two string argument",
		`instances().where(1, 2)`:       "string argument",
		`instances().json("extra")`:     "no arguments",
		`"text".where("a", "b")`:        "cannot call",
		`instances() + instances()`:     "unsupported expression",
		`instances()["not-an-int"]`:     "expected integer",
	}
	for src, fragment := range cases {
		_, err := env.Eval(src)
		require.Error(t, err, "expected error: %s", src)
		assert.Contains(t, err.Error(), fragment, "wrong error for %s", src)
	}
}

func TestEvalHelp(t *testing.T) {
	env := testEnv()

	v, err := env.Eval(`help()`)
	require.NoError(t, err)
	help := v.(string)
	assert.Contains(t, help, "instances()")
	assert.Contains(t, help, ".where(")

	v, err = env.Eval(`help`)
	require.NoError(t, err)
	assert.Equal(t, help, v)
}
