package ast

import "testing"

func TestLocation_MarshalJSON(t *testing.T) {
	loc := &Location{Start: 3, End: 9}
	b, err := loc.MarshalJSON()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `{"start":3,"end":9}`
	if string(b) != want {
		t.Errorf("MarshalJSON() = %s, want %s", b, want)
	}
}

func TestLocation_MarshalJSON_Nil(t *testing.T) {
	var loc *Location
	b, err := loc.MarshalJSON()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(b) != "null" {
		t.Errorf("MarshalJSON() on nil = %s, want null", b)
	}
}

func TestLocated_GetLoc(t *testing.T) {
	n := &Name{Located: Located{Loc: &Location{Start: 0, End: 3}}, Value: "foo"}
	if n.GetLoc() == nil || n.GetLoc().Start != 0 {
		t.Fatalf("GetLoc() = %+v, want Start 0", n.GetLoc())
	}

	var noLoc Name
	noLoc.Value = "bar"
	if noLoc.GetLoc() != nil {
		t.Errorf("GetLoc() = %+v, want nil", noLoc.GetLoc())
	}
}

func TestClosedValueFamily(t *testing.T) {
	var values []Value = []Value{
		&IntValue{Value: "1"},
		&FloatValue{Value: "1.0"},
		&StringValue{Value: "s"},
		&BooleanValue{Value: true},
		&NullValue{},
		&EnumValue{Value: "RED"},
		&ListValue{},
		&ObjectValue{},
		&Variable{Name: &Name{Value: "x"}},
	}
	for _, v := range values {
		if v.GetLoc() != nil {
			t.Errorf("%s: expected nil Loc by default", v.Kind())
		}
	}
}
