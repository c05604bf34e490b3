package graphql_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	graphql "github.com/Protocol-Lattice/graphql-core"
	"github.com/Protocol-Lattice/graphql-core/ast"
)

func TestGraphqlHandlerInvalidJSON(t *testing.T) {
	req := httptest.NewRequest("POST", "/graphql", bytes.NewBufferString("not-json"))
	w := httptest.NewRecorder()
	graphql.GraphqlHandler(w, req)
	resp := w.Result()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 for invalid JSON, got %d", resp.StatusCode)
	}
}

func TestGraphqlHandlerEmptyQueryFailsToParse(t *testing.T) {
	payload := map[string]interface{}{"query": ""}
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest("POST", "/graphql", bytes.NewBuffer(body))
	w := httptest.NewRecorder()
	graphql.GraphqlHandler(w, req)
	resp := w.Result()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 for an empty document, got %d", resp.StatusCode)
	}
}

func TestLexerIllegalCharacter(t *testing.T) {
	l := graphql.NewLexer(graphql.NewSource("~"))
	if _, err := l.Advance(); err == nil {
		t.Error("expected an error for an illegal character")
	}
}

func TestParseOperationDefinitionImplicitQuery(t *testing.T) {
	doc, err := graphql.Parse(`{ hello }`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Definitions) != 1 {
		t.Fatal("expected one definition for implicit query")
	}
	op, ok := doc.Definitions[0].(*graphql.OperationDefinition)
	if !ok {
		t.Fatal("expected operation definition")
	}
	if op.Operation != "query" {
		t.Errorf("expected operation to be 'query', got %q", op.Operation)
	}
}

func TestExecutorWithRegisteredResolver(t *testing.T) {
	doc, err := graphql.Parse(`{ greet }`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	exec := graphql.NewExecutor()
	exec.RegisterQueryResolver("greet", func(source interface{}, args map[string]interface{}) (interface{}, error) {
		return "Hello, World!", nil
	})

	result, err := exec.Execute(doc, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, ok := result["data"].(map[string]interface{})
	if !ok {
		t.Fatal("expected data to be a map")
	}

	greet, ok := data["greet"].(string)
	if !ok || greet != "Hello, World!" {
		t.Errorf("expected greet to be 'Hello, World!', got %v", data["greet"])
	}
}

func TestParseVariableDefinitions(t *testing.T) {
	doc, err := graphql.Parse(`query ($var: Int!) { hello }`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Definitions) != 1 {
		t.Fatalf("expected one definition, got %d", len(doc.Definitions))
	}
	op, ok := doc.Definitions[0].(*graphql.OperationDefinition)
	if !ok {
		t.Fatal("expected an operation definition")
	}
	if len(op.VariableDefinitions) != 1 {
		t.Fatalf("expected one variable definition, got %d", len(op.VariableDefinitions))
	}
	varDef := op.VariableDefinitions[0]
	if varDef.Variable.Name.Value != "var" {
		t.Errorf("expected variable name 'var', got %q", varDef.Variable.Name.Value)
	}
	if _, ok := varDef.Type.(*ast.NonNullType); !ok {
		t.Errorf("expected a NonNullType, got %T", varDef.Type)
	}
}

func TestSubscriptionExecutor(t *testing.T) {
	exec := graphql.NewExecutor()

	ch := make(chan interface{}, 1)
	ch <- "event1"
	close(ch)

	exec.RegisterSubscriptionResolver("testSub", func(source interface{}, args map[string]interface{}) (interface{}, error) {
		return ch, nil
	})

	doc, err := graphql.Parse(`{ testSub }`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	op := doc.Definitions[0].(*graphql.OperationDefinition)
	field := op.SelectionSet.Selections[0].(*graphql.Field)

	subCh, err := exec.ExecuteSubscription(field, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	select {
	case event := <-subCh:
		if event != "event1" {
			t.Errorf("expected 'event1', got %v", event)
		}
	case <-time.After(1 * time.Second):
		t.Error("timed out waiting for subscription event")
	}
}

func TestGraphqlHandlerNilVariables(t *testing.T) {
	graphql.RegisterQueryResolver("greet", func(source interface{}, args map[string]interface{}) (interface{}, error) {
		return "hi", nil
	})
	payload := map[string]interface{}{
		"query":     "{ greet }",
		"variables": nil,
	}
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest("POST", "/graphql", bytes.NewBuffer(body))
	w := httptest.NewRecorder()
	graphql.GraphqlHandler(w, req)
	resp := w.Result()
	if resp.StatusCode != 200 {
		t.Errorf("expected status 200, got %d", resp.StatusCode)
	}
}

func TestLexerStringToken(t *testing.T) {
	l := graphql.NewLexer(graphql.NewSource(`"hello world"`))
	tok, err := l.Advance()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.Kind != graphql.STRING || tok.Value != "hello world" {
		t.Errorf("expected string token with value 'hello world', got Kind: %s, Value: %q", tok.Kind, tok.Value)
	}
}

func TestParseOperationDefinitionWithNameAndVariables(t *testing.T) {
	doc, err := graphql.Parse(`query MyQuery($id: Int) { hello }`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Definitions) != 1 {
		t.Fatalf("expected one definition, got %d", len(doc.Definitions))
	}
	op, ok := doc.Definitions[0].(*graphql.OperationDefinition)
	if !ok {
		t.Fatal("expected an operation definition")
	}
	if op.Name == nil || op.Name.Value != "MyQuery" {
		t.Errorf("expected operation name 'MyQuery', got %+v", op.Name)
	}
	if len(op.VariableDefinitions) != 1 {
		t.Errorf("expected one variable definition, got %d", len(op.VariableDefinitions))
	}
}
