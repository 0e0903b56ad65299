package players

import (
	"reflect"
	"testing"
)

func TestPlayerJSONTags(t *testing.T) {
	type fieldCheck struct {
		name string
		tag  string
	}
	playerType := reflect.TypeOf(Player{})
	fields := []fieldCheck{
		{"ID", "id"},
		{"Name", "name"},
		{"Position", "position"},
		{"Team", "team"},
		{"Meta", "meta"},
	}
	for _, fc := range fields {
		f, ok := playerType.FieldByName(fc.name)
		if !ok {
			t.Fatalf("missing field %s", fc.name)
		}
		if tag := f.Tag.Get("json"); tag != fc.tag {
			t.Fatalf("field %s expected tag %s, got %s", fc.name, fc.tag, tag)
		}
	}
}

func TestIsFantasyPosition(t *testing.T) {
	for _, pos := range []string{PositionQB, PositionRB, PositionWR, PositionTE, PositionK, PositionDEF} {
		if !IsFantasyPosition(pos) {
			t.Fatalf("expected %s to be fantasy relevant", pos)
		}
	}
	for _, pos := range []string{"LS", "OL", "P", "", "qb"} {
		if IsFantasyPosition(pos) {
			t.Fatalf("expected %s to be filtered out", pos)
		}
	}
}
