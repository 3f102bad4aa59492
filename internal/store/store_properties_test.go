package store

import (
	"context"
	"testing"

	"pgregory.net/rapid"

	"github.com/roach88/staffbook/internal/record"
	"github.com/roach88/staffbook/internal/testutil"
)

func drawRecord(rt *rapid.T, label string) record.Record {
	return record.New(
		rapid.Int64Range(-1000, 1000).Draw(rt, label+".id"),
		rapid.String().Draw(rt, label+".name"),
		rapid.String().Draw(rt, label+".title"),
		rapid.Float64Range(-1e9, 1e9).Draw(rt, label+".compensation"),
	)
}

func TestSaveLoadReproducesRoster(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(0, 20).Draw(rt, "n")
		b := testutil.NewMemoryBackend()
		s, err := Open(context.Background(), b, WithLogger(quietLogger()))
		if err != nil {
			rt.Fatalf("Open: %v", err)
		}
		for i := 0; i < n; i++ {
			r := drawRecord(rt, "r")
			if err := s.Add(context.Background(), r.ID, r.Name, r.Title, r.Compensation); err != nil {
				rt.Fatalf("Add: %v", err)
			}
		}

		fresh, err := Open(context.Background(), testutil.NewMemoryBackendWith(b.Contents()), WithLogger(quietLogger()))
		if err != nil {
			rt.Fatalf("reload: %v", err)
		}
		want, got := s.List(), fresh.List()
		if len(want) != len(got) {
			rt.Fatalf("len: got %d, want %d", len(got), len(want))
		}
		for i := range want {
			if want[i] != got[i] {
				rt.Fatalf("record %d: got %#v, want %#v", i, got[i], want[i])
			}
		}
	})
}

func TestMutationInvariants(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		s, err := Open(context.Background(), testutil.NewMemoryBackend(), WithLogger(quietLogger()))
		if err != nil {
			rt.Fatalf("Open: %v", err)
		}
		ctx := context.Background()

		steps := rapid.IntRange(1, 40).Draw(rt, "steps")
		for i := 0; i < steps; i++ {
			id := rapid.Int64Range(0, 5).Draw(rt, "id")
			before := s.Len()
			_, findErr := s.Find(id)
			exists := findErr == nil

			switch rapid.SampledFrom([]string{"add", "update", "delete"}).Draw(rt, "op") {
			case "add":
				if err := s.Add(ctx, id, "n", "t", 1); err != nil {
					rt.Fatalf("Add: %v", err)
				}
				if s.Len() != before+1 {
					rt.Fatalf("add: len %d, want %d", s.Len(), before+1)
				}
				if _, err := s.Find(id); err != nil {
					rt.Fatalf("added id %d not found", id)
				}
			case "update":
				err := s.Update(ctx, id, "u", "v", 2)
				if exists != (err == nil) || (!exists && !IsNotFound(err)) {
					rt.Fatalf("update exists=%v err=%v", exists, err)
				}
				if s.Len() != before {
					rt.Fatalf("update changed length")
				}
				if exists {
					got, _ := s.Find(id)
					if got.ID != id || got.Name != "u" {
						rt.Fatalf("update: got %#v", got)
					}
				}
			case "delete":
				err := s.Delete(ctx, id)
				if exists != (err == nil) || (!exists && !IsNotFound(err)) {
					rt.Fatalf("delete exists=%v err=%v", exists, err)
				}
				want := before
				if exists {
					want--
				}
				if s.Len() != want {
					rt.Fatalf("delete: len %d, want %d", s.Len(), want)
				}
			}
		}
	})
}
