package client_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/adamwoolhether/netreq/client"
)

func TestDecode(t *testing.T) {
	type item struct {
		ID    int      `json:"id" validate:"required"`
		Name  string   `json:"name"`
		Score *float64 `json:"score"`
	}

	score := 0.0

	testCases := map[string]struct {
		data    string
		exp     item
		wantErr string
	}{
		"complete": {
			data: `{"id": 1, "name": "x", "score": 0}`,
			exp:  item{ID: 1, Name: "x", Score: &score},
		},
		"optionalMissing": {
			data: `{"id": 2}`,
			exp:  item{ID: 2},
		},
		"unknownIgnored": {
			data: `{"id": 3, "other": [1, 2]}`,
			exp:  item{ID: 3},
		},
		"surroundingWhitespace": {
			data: "\n  {\"id\": 4}\n\t",
			exp:  item{ID: 4},
		},
		"requiredMissing": {
			data:    `{"wrong": true}`,
			wantErr: "id",
		},
		"notJSON": {
			data:    `not json`,
			wantErr: "decoding json",
		},
		"truncated": {
			data:    `{"id": 1`,
			wantErr: "decoding json",
		},
		"trailingData": {
			data:    `{"id": 1} []`,
			wantErr: "unexpected data",
		},
		"wrongType": {
			data:    `[1, 2, 3]`,
			wantErr: "decoding json",
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			got, err := client.Decode[item]([]byte(tc.data))

			if tc.wantErr != "" {
				if err == nil {
					t.Fatalf("exp err containing %q, got nil", tc.wantErr)
				}
				if !strings.Contains(err.Error(), tc.wantErr) {
					t.Errorf("exp err containing %q, got: %v", tc.wantErr, err)
				}
				if diff := cmp.Diff(item{}, got); diff != "" {
					t.Errorf("exp zero value on error (-exp +got):\n%s", diff)
				}
				return
			}

			if err != nil {
				t.Fatalf("exp nil err, got: %v", err)
			}
			if diff := cmp.Diff(tc.exp, got); diff != "" {
				t.Errorf("decoded value mismatch (-exp +got):\n%s", diff)
			}
		})
	}
}

func TestDecode_Idempotent(t *testing.T) {
	type item struct {
		ID   int      `json:"id" validate:"required"`
		Tags []string `json:"tags"`
	}

	data := []byte(`{"id": 9, "tags": ["a", "b"]}`)

	first, err := client.Decode[item](data)
	if err != nil {
		t.Fatalf("first decode: %v", err)
	}
	second, err := client.Decode[item](data)
	if err != nil {
		t.Fatalf("second decode: %v", err)
	}

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("decodes differ (-first +second):\n%s", diff)
	}
}

func TestDecode_NonStructTargets(t *testing.T) {
	s, err := client.Decode[[]string]([]byte(`["a", "b"]`))
	if err != nil {
		t.Fatalf("decoding slice: %v", err)
	}
	if diff := cmp.Diff([]string{"a", "b"}, s); diff != "" {
		t.Errorf("slice mismatch (-exp +got):\n%s", diff)
	}

	n, err := client.Decode[int]([]byte(`42`))
	if err != nil {
		t.Fatalf("decoding int: %v", err)
	}
	if n != 42 {
		t.Errorf("exp 42, got %d", n)
	}
}

func TestDecode_Null(t *testing.T) {
	type item struct {
		ID int `json:"id" validate:"required"`
	}

	decodes := map[string]func([]byte) error{
		"pointer": func(data []byte) error {
			_, err := client.Decode[*item](data)
			return err
		},
		"struct": func(data []byte) error {
			_, err := client.Decode[item](data)
			return err
		},
		"slice": func(data []byte) error {
			_, err := client.Decode[[]item](data)
			return err
		},
		"map": func(data []byte) error {
			_, err := client.Decode[map[string]any](data)
			return err
		},
	}

	for name, decode := range decodes {
		t.Run(name, func(t *testing.T) {
			if err := decode([]byte(" null\n")); err == nil {
				t.Error("exp err for top-level null, got nil")
			}
		})
	}
}

func TestDecode_Collections(t *testing.T) {
	type item struct {
		ID   int    `json:"id" validate:"required"`
		Name string `json:"name"`
	}

	t.Run("slice", func(t *testing.T) {
		got, err := client.Decode[[]item]([]byte(`[{"id": 1}, {"id": 2, "name": "b"}]`))
		if err != nil {
			t.Fatalf("exp nil err, got: %v", err)
		}
		if diff := cmp.Diff([]item{{ID: 1}, {ID: 2, Name: "b"}}, got); diff != "" {
			t.Errorf("decoded value mismatch (-exp +got):\n%s", diff)
		}

		got, err = client.Decode[[]item]([]byte(`[{"id": 1}, {"wrong": true}]`))
		if err == nil || !strings.Contains(err.Error(), "[1].id") {
			t.Errorf("exp err naming [1].id, got: %v", err)
		}
		if got != nil {
			t.Errorf("exp nil slice on error, got: %+v", got)
		}
	})

	t.Run("pointerElements", func(t *testing.T) {
		_, err := client.Decode[[]*item]([]byte(`[{"name": "a"}]`))
		if err == nil {
			t.Error("exp err for element missing id, got nil")
		}
	})

	t.Run("map", func(t *testing.T) {
		got, err := client.Decode[map[string]item]([]byte(`{"a": {"wrong": true}}`))
		if err == nil || !strings.Contains(err.Error(), "[a].id") {
			t.Errorf("exp err naming [a].id, got: %v", err)
		}
		if got != nil {
			t.Errorf("exp nil map on error, got: %+v", got)
		}
	})
}

func TestDecode_MalformedTag(t *testing.T) {
	type misspelled struct {
		ID int `json:"id" validate:"requird"`
	}

	if _, err := client.Decode[misspelled]([]byte(`{"id": 1}`)); err == nil {
		t.Error("exp err for malformed validate tag, got nil")
	}
}

func TestDecode_UseNumber(t *testing.T) {
	got, err := client.Decode[map[string]any]([]byte(`{"n": 9007199254740993}`), client.UseNumber())
	if err != nil {
		t.Fatalf("exp nil err, got: %v", err)
	}

	n, ok := got["n"].(json.Number)
	if !ok {
		t.Fatalf("exp json.Number, got %T", got["n"])
	}
	if n.String() != "9007199254740993" {
		t.Errorf("exp 9007199254740993, got %s", n)
	}
}
