// Package executor is a small reflection-based demonstration engine that
// walks the ast.Document produced by package parser and resolves it
// against registered resolver functions. It is a worked example of
// consuming the parsed AST, not a conformant GraphQL execution engine: it
// has no field-merging, no schema-driven type checking, and no
// per-field error collection — a failing field aborts the whole
// selection set.
package executor

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/Protocol-Lattice/graphql-core/ast"
)

// ResolverFunc defines the function signature for all resolvers.
type ResolverFunc func(source interface{}, args map[string]interface{}) (interface{}, error)

// Executor executes GraphQL queries against registered resolvers.
type Executor struct {
	queryResolvers        map[string]ResolverFunc
	mutationResolvers     map[string]ResolverFunc
	subscriptionResolvers map[string]ResolverFunc
}

// New creates a new Executor instance.
func New() *Executor {
	return &Executor{
		queryResolvers:        make(map[string]ResolverFunc),
		mutationResolvers:     make(map[string]ResolverFunc),
		subscriptionResolvers: make(map[string]ResolverFunc),
	}
}

// RegisterQueryResolver registers a resolver for a query field.
func (e *Executor) RegisterQueryResolver(field string, resolver ResolverFunc) {
	e.queryResolvers[field] = resolver
}

// RegisterMutationResolver registers a resolver for a mutation field.
func (e *Executor) RegisterMutationResolver(field string, resolver ResolverFunc) {
	e.mutationResolvers[field] = resolver
}

// RegisterSubscriptionResolver registers a resolver for a subscription field.
func (e *Executor) RegisterSubscriptionResolver(field string, resolver ResolverFunc) {
	e.subscriptionResolvers[field] = resolver
}

// Execute runs the first definition in doc, which must be an
// OperationDefinition, against the registered resolvers and returns a
// {"data": ...} envelope.
func (e *Executor) Execute(doc *ast.Document, variables map[string]interface{}) (map[string]interface{}, error) {
	response := map[string]interface{}{}
	if len(doc.Definitions) == 0 {
		return response, fmt.Errorf("no definitions found")
	}
	op, ok := doc.Definitions[0].(*ast.OperationDefinition)
	if !ok {
		return response, fmt.Errorf("unsupported definition type")
	}
	data, err := e.executeSelectionSet(nil, op.SelectionSet, variables)
	if err != nil {
		return response, err
	}
	response["data"] = data
	return response, nil
}

// ExecuteSubscription resolves the single top-level field of a
// subscription operation and returns the channel of events its resolver
// produced.
func (e *Executor) ExecuteSubscription(field *ast.Field, variables map[string]interface{}) (<-chan interface{}, error) {
	fieldName := field.Name.Value
	resolver, ok := e.subscriptionResolvers[fieldName]
	if !ok {
		return nil, fmt.Errorf("no subscription resolver found for field %s", fieldName)
	}
	args := buildArgs(field, variables)
	res, err := resolver(nil, args)
	if err != nil {
		return nil, err
	}
	if ch, ok := res.(<-chan interface{}); ok {
		return ch, nil
	}
	if ch, ok := res.(chan interface{}); ok {
		return (<-chan interface{})(ch), nil
	}
	return nil, fmt.Errorf("subscription resolver for field %s did not return a channel", fieldName)
}

// executeSelectionSet traverses the selection set and resolves each
// field. FragmentSpread and InlineFragment selections are skipped: this
// demonstration executor has no fragment table to inline them from.
func (e *Executor) executeSelectionSet(source interface{}, ss *ast.SelectionSet, variables map[string]interface{}) (map[string]interface{}, error) {
	result := make(map[string]interface{})
	for _, sel := range ss.Selections {
		field, ok := sel.(*ast.Field)
		if !ok {
			continue
		}
		res, err := e.resolveField(source, field, variables)
		if err != nil {
			return nil, err
		}
		responseKey := field.Name.Value
		if field.Alias != nil {
			responseKey = field.Alias.Value
		}
		if field.SelectionSet != nil {
			nested, err := e.resolveNestedSelection(res, field.SelectionSet, variables)
			if err != nil {
				return nil, err
			}
			result[responseKey] = nested
		} else {
			result[responseKey] = res
		}
	}
	return result, nil
}

// resolveField looks up and executes the appropriate resolver for a
// field, or falls back to reflection over the parent source value for
// nested fields.
func (e *Executor) resolveField(source interface{}, field *ast.Field, variables map[string]interface{}) (interface{}, error) {
	fieldName := field.Name.Value

	if source == nil {
		if resolver, ok := e.queryResolvers[fieldName]; ok {
			args := buildArgs(field, variables)
			return resolver(source, args)
		}
		if resolver, ok := e.mutationResolvers[fieldName]; ok {
			args := buildArgs(field, variables)
			return resolver(source, args)
		}
		return nil, fmt.Errorf("no resolver found for field %s", fieldName)
	}

	return reflectResolve(source, fieldName)
}

// reflectResolve uses reflection to find a field value on a source struct
// by name or by json tag (case-insensitively).
func reflectResolve(source interface{}, fieldName string) (interface{}, error) {
	val := reflect.ValueOf(source)
	if val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return nil, fmt.Errorf("source is nil")
		}
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return nil, fmt.Errorf("source is not a struct")
	}

	typ := val.Type()
	for i := 0; i < typ.NumField(); i++ {
		sf := typ.Field(i)
		if strings.EqualFold(sf.Name, fieldName) {
			return val.Field(i).Interface(), nil
		}
		if tag, ok := sf.Tag.Lookup("json"); ok {
			tagName := strings.Split(tag, ",")[0]
			if strings.EqualFold(tagName, fieldName) {
				return val.Field(i).Interface(), nil
			}
		}
	}

	return nil, fmt.Errorf("no resolver found for field %s via reflection", fieldName)
}

// resolveNestedSelection handles nested selection sets for single
// objects, pointers to objects, and slices of either.
func (e *Executor) resolveNestedSelection(res interface{}, ss *ast.SelectionSet, variables map[string]interface{}) (interface{}, error) {
	val := reflect.ValueOf(res)
	switch val.Kind() {
	case reflect.Ptr:
		if val.IsNil() {
			return nil, nil
		}
		if val.Elem().Kind() == reflect.Struct {
			return e.executeSelectionSet(res, ss, variables)
		}
	case reflect.Struct:
		return e.executeSelectionSet(res, ss, variables)
	case reflect.Slice:
		arr := []interface{}{}
		for i := 0; i < val.Len(); i++ {
			item := val.Index(i).Interface()
			sub, err := e.executeSelectionSet(item, ss, variables)
			if err != nil {
				return nil, err
			}
			arr = append(arr, sub)
		}
		return arr, nil
	}
	return res, nil
}

// buildArgs evaluates a field's arguments against the request's
// variables into a plain Go map a resolver can consume.
func buildArgs(field *ast.Field, variables map[string]interface{}) map[string]interface{} {
	args := make(map[string]interface{})
	for _, arg := range field.Arguments {
		args[arg.Name.Value] = buildValue(arg.Value, variables)
	}
	return args
}

// buildValue converts an ast.Value into a plain Go value, resolving
// variable references against the request's variables.
func buildValue(val ast.Value, variables map[string]interface{}) interface{} {
	switch v := val.(type) {
	case *ast.Variable:
		return variables[v.Name.Value]
	case *ast.IntValue:
		i, err := strconv.Atoi(v.Value)
		if err != nil {
			return 0
		}
		return i
	case *ast.FloatValue:
		f, err := strconv.ParseFloat(v.Value, 64)
		if err != nil {
			return 0.0
		}
		return f
	case *ast.StringValue:
		return v.Value
	case *ast.BooleanValue:
		return v.Value
	case *ast.NullValue:
		return nil
	case *ast.EnumValue:
		return v.Value
	case *ast.ListValue:
		arr := make([]interface{}, 0, len(v.Values))
		for _, elem := range v.Values {
			arr = append(arr, buildValue(elem, variables))
		}
		return arr
	case *ast.ObjectValue:
		m := make(map[string]interface{})
		for _, f := range v.Fields {
			m[f.Name.Value] = buildValue(f.Value, variables)
		}
		return m
	default:
		return nil
	}
}
