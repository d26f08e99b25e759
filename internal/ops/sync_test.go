package ops

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"agnoctl/internal/ollama"
)

type fakeEngine struct {
	cached   []ollama.Model
	tagsErr  error
	pullErr  map[string]error
	pulled   []string
	statuses []string
}

func (f *fakeEngine) Tags(ctx context.Context) ([]ollama.Model, error) {
	return f.cached, f.tagsErr
}

func (f *fakeEngine) Pull(ctx context.Context, name string, onStatus func(string)) error {
	f.pulled = append(f.pulled, name)
	if onStatus != nil {
		onStatus("pulling manifest")
		f.statuses = append(f.statuses, name)
	}
	if err, ok := f.pullErr[name]; ok {
		return err
	}
	return nil
}

func TestSyncSkipsCachedModels(t *testing.T) {
	eng := &fakeEngine{cached: []ollama.Model{{Name: "a"}}}
	res, err := syncModels(context.Background(), eng, []string{"a", "b"})
	if err != nil {
		t.Fatalf("sync: %v", err)
	}
	if !reflect.DeepEqual(eng.pulled, []string{"b"}) {
		t.Fatalf("pulled %v, want [b]", eng.pulled)
	}
	if !reflect.DeepEqual(res.Present, []string{"a"}) || !reflect.DeepEqual(res.Pulled, []string{"b"}) {
		t.Fatalf("result: %+v", res)
	}
}

func TestSyncPullFailureDoesNotAbortBatch(t *testing.T) {
	eng := &fakeEngine{pullErr: map[string]error{"b": errors.New("manifest missing")}}
	res, err := syncModels(context.Background(), eng, []string{"a", "b", "c"})
	if err != nil {
		t.Fatalf("sync: %v", err)
	}
	if !reflect.DeepEqual(eng.pulled, []string{"a", "b", "c"}) {
		t.Fatalf("pulled %v, want all three attempted", eng.pulled)
	}
	if !reflect.DeepEqual(res.Failed, []string{"b"}) {
		t.Fatalf("failed: %v", res.Failed)
	}
	if !reflect.DeepEqual(res.Pulled, []string{"a", "c"}) {
		t.Fatalf("pulled: %v", res.Pulled)
	}
}

func TestSyncEachMissingModelPulledExactlyOnce(t *testing.T) {
	eng := &fakeEngine{}
	if _, err := syncModels(context.Background(), eng, []string{"x", "y"}); err != nil {
		t.Fatalf("sync: %v", err)
	}
	if !reflect.DeepEqual(eng.pulled, []string{"x", "y"}) {
		t.Fatalf("pulled %v", eng.pulled)
	}
}

func TestSyncLatestTagEquivalence(t *testing.T) {
	eng := &fakeEngine{cached: []ollama.Model{{Name: "nomic-embed-text:latest"}}}
	res, err := syncModels(context.Background(), eng, []string{"nomic-embed-text"})
	if err != nil {
		t.Fatalf("sync: %v", err)
	}
	if len(eng.pulled) != 0 {
		t.Fatalf("unexpected pull for cached model: %v", eng.pulled)
	}
	if len(res.Present) != 1 {
		t.Fatalf("result: %+v", res)
	}
}

func TestSyncTagsQueryFailureIsFatal(t *testing.T) {
	eng := &fakeEngine{tagsErr: errors.New("connection refused")}
	if _, err := syncModels(context.Background(), eng, []string{"a"}); err == nil {
		t.Fatalf("expected error when tags query fails")
	}
	if len(eng.pulled) != 0 {
		t.Fatalf("pull should not run without a cache listing: %v", eng.pulled)
	}
}
