package source

import "testing"

func TestNew_Defaults(t *testing.T) {
	s := New("{ field }")
	if s.Name != DefaultName {
		t.Errorf("Name = %q, want %q", s.Name, DefaultName)
	}
	if s.LocationOffset != DefaultLocationOffset {
		t.Errorf("LocationOffset = %+v, want %+v", s.LocationOffset, DefaultLocationOffset)
	}
}

func TestNew_Options(t *testing.T) {
	s := New("{ field }", WithName("MyQuery.graphql"), WithLocationOffset(Location{Line: 5, Column: 3}))
	if s.Name != "MyQuery.graphql" {
		t.Errorf("Name = %q, want MyQuery.graphql", s.Name)
	}
	if s.LocationOffset != (Location{Line: 5, Column: 3}) {
		t.Errorf("LocationOffset = %+v, want {5 3}", s.LocationOffset)
	}
}

func TestLocationInfo(t *testing.T) {
	s := New("line one\nline two\nline three")
	cases := []struct {
		offset int
		want   Location
	}{
		{0, Location{Line: 1, Column: 1}},
		{5, Location{Line: 1, Column: 6}},
		{9, Location{Line: 2, Column: 1}},
		{18, Location{Line: 3, Column: 1}},
	}
	for _, c := range cases {
		if got := s.LocationInfo(c.offset); got != c.want {
			t.Errorf("LocationInfo(%d) = %+v, want %+v", c.offset, got, c.want)
		}
	}
}

func TestLocationInfo_RespectsLocationOffset(t *testing.T) {
	s := New("embedded body", WithLocationOffset(Location{Line: 10, Column: 5}))
	got := s.LocationInfo(0)
	want := Location{Line: 10, Column: 5}
	if got != want {
		t.Errorf("LocationInfo(0) = %+v, want %+v", got, want)
	}
}
