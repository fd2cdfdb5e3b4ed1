package containers

import (
	"encoding/json"
	"testing"
)

func TestStringSet_Add(t *testing.T) {
	set := NewStringSet()
	set.Add("azriel")
	if !set.Contains("azriel") {
		t.Fatal("\"azriel\" should be in the set but he's not")
	}
	set.Add("azriel")
	if set.NumberOfElements() != 1 {
		t.Fatalf("set has number of elements != 1")
	}
}

func TestStringSet_Remove(t *testing.T) {
	set := NewStringSet("azriel")
	set.Remove("azriel", "david")
	if set.Contains("azriel") {
		t.Fatalf("\"azriel\" is in the set although he shouldn't be")
	}
	if set.NumberOfElements() != 0 {
		t.Fatalf("set has number of elements != 0")
	}
}

func TestStringSet_Slice(t *testing.T) {
	set := NewStringSet("nikita", "david", "azriel", "david")
	slice := set.Slice()
	expected := []string{"azriel", "david", "nikita"}
	if len(slice) != len(expected) {
		t.Fatalf("expected %v but got %v", expected, slice)
	}
	for i := range expected {
		if slice[i] != expected[i] {
			t.Fatalf("expected %v but got %v", expected, slice)
		}
	}
	if set.String() != "{azriel,david,nikita}" {
		t.Fatalf("unexpected string representation: %s", set.String())
	}
}

func TestStringSet_JSON(t *testing.T) {
	set := NewStringSet("secretary", "admin")
	setBytes, err := json.Marshal(set)
	if err != nil {
		t.Fatal(err)
	}
	if string(setBytes) != "[\"admin\",\"secretary\"]" {
		t.Fatalf("unexpected json encoding of set: %s", string(setBytes))
	}
	decoded := &StringSet{}
	if err := json.Unmarshal([]byte("[\"std_user\",\"admin\",\"std_user\"]"), decoded); err != nil {
		t.Fatal(err)
	}
	if decoded.NumberOfElements() != 2 || !decoded.Contains("admin") || !decoded.Contains("std_user") {
		t.Fatalf("unexpected decoded set: %v", decoded)
	}
	if err := json.Unmarshal([]byte("{\"elements\":{}}"), decoded); err == nil {
		t.Fatal("expected decoding a non array to fail")
	}
}

func TestNilStringSet(t *testing.T) {
	var set *StringSet
	if set.Contains("admin") || set.NumberOfElements() != 0 {
		t.Fatal("expected a nil set to be empty")
	}
}
