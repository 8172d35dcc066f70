package utils

import (
	"reflect"
	"testing"
)

func TestSplitList(t *testing.T) {
	got := SplitList(" a, b;;c\na ,")
	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("SplitList = %v, want %v", got, want)
	}
}

func TestNormalizeTags(t *testing.T) {
	got := NormalizeTags([]string{"  HIMÁCHAL   pradesh", "Himachal Pradesh", "", "adventure"})
	want := []string{"Himachal Pradesh", "Adventure"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("NormalizeTags = %v, want %v", got, want)
	}
}
