package generator

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartprofile/backend/internal/model"
	"github.com/smartprofile/backend/internal/queue"
)

// --- fakes ---

type fakeResumeStore struct {
	created []model.Resume
	nextID  uint64
	err     error
}

func (f *fakeResumeStore) Create(_ context.Context, res *model.Resume) (uint64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.nextID++
	rec := *res
	rec.ID = f.nextID
	f.created = append(f.created, rec)
	return f.nextID, nil
}

func (f *fakeResumeStore) ListByUser(_ context.Context, userID uint64) ([]model.Resume, error) {
	out := make([]model.Resume, 0)
	// newest first
	for i := len(f.created) - 1; i >= 0; i-- {
		if f.created[i].UserID == userID {
			out = append(out, f.created[i])
		}
	}
	return out, nil
}

type fakeLLM struct {
	text    string
	err     error
	calls   int
	prompts []string
}

func (f *fakeLLM) Generate(_ context.Context, prompt string) (string, error) {
	f.calls++
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

// --- tests ---

func TestGenerateEmptySkillsSkipsUpstream(t *testing.T) {
	for _, skills := range []string{"", "   ", "<>", " <> "} {
		store := &fakeResumeStore{}
		llm := &fakeLLM{text: "x"}
		svc := NewService(store, llm)

		_, err := svc.Generate(context.Background(), 1, Request{Skills: skills})

		require.ErrorIs(t, err, ErrEmptySkills, "skills=%q", skills)
		assert.Zero(t, llm.calls, "upstream must not be called for skills=%q", skills)
		assert.Empty(t, store.created)
	}
}

func TestGenerateSanitizesAndPersists(t *testing.T) {
	store := &fakeResumeStore{}
	llm := &fakeLLM{text: "Built scalable systems."}
	svc := NewService(store, llm)

	rec, err := svc.Generate(context.Background(), 7, Request{
		Skills:     "C++ <script> & Go",
		Role:       " <Backend> Engineer ",
		Tone:       "professional",
		Experience: "senior",
		Length:     3,
	})
	require.NoError(t, err)

	assert.Equal(t, "Built scalable systems.", rec.Summary)
	require.Len(t, store.created, 1)
	stored := store.created[0]
	assert.Equal(t, uint64(7), stored.UserID)
	assert.Equal(t, "C++ script & Go", stored.Skills)
	assert.Equal(t, "Backend Engineer", stored.Role)
	assert.Equal(t, 3, stored.Length)
	assert.Equal(t, rec.ID, stored.ID)

	require.Len(t, llm.prompts, 1)
	assert.Contains(t, llm.prompts[0], "Skills & facts: C++ script & Go.")
	assert.Contains(t, llm.prompts[0], "Length: 3 sentences.")
}

func TestGenerateClampsLength(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{"absent defaults", `{"skills":"Go"}`, 4},
		{"zero defaults", `{"skills":"Go","length":0}`, 4},
		{"below range", `{"skills":"Go","length":1}`, 2},
		{"above range", `{"skills":"Go","length":10}`, 6},
		{"numeric string", `{"skills":"Go","length":"5"}`, 5},
		{"non-numeric defaults", `{"skills":"Go","length":"lots"}`, 4},
		{"null defaults", `{"skills":"Go","length":null}`, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req Request
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))

			store := &fakeResumeStore{}
			svc := NewService(store, &fakeLLM{text: "ok"})

			_, err := svc.Generate(context.Background(), 1, req)
			require.NoError(t, err)
			require.Len(t, store.created, 1)
			assert.Equal(t, tt.want, store.created[0].Length)
		})
	}
}

func TestGenerateDefaultsToneAndExperience(t *testing.T) {
	store := &fakeResumeStore{}
	svc := NewService(store, &fakeLLM{text: "ok"})

	_, err := svc.Generate(context.Background(), 1, Request{Skills: "Go"})
	require.NoError(t, err)
	require.Len(t, store.created, 1)
	assert.Equal(t, "professional", store.created[0].Tone)
	assert.Equal(t, "student", store.created[0].Experience)
}

func TestGenerateUpstreamFailureNotPersisted(t *testing.T) {
	store := &fakeResumeStore{}
	upErr := &UpstreamError{Status: 503, Detail: "overloaded"}
	svc := NewService(store, &fakeLLM{err: upErr})

	_, err := svc.Generate(context.Background(), 1, Request{Skills: "Go"})

	var ue *UpstreamError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, 503, ue.Status)
	assert.Empty(t, store.created)
}

func TestGenerateStoreFailure(t *testing.T) {
	store := &fakeResumeStore{err: errors.New("db down")}
	svc := NewService(store, &fakeLLM{text: "ok"})

	_, err := svc.Generate(context.Background(), 1, Request{Skills: "Go"})
	require.Error(t, err)
	var ue *UpstreamError
	assert.False(t, errors.As(err, &ue), "store failures are not upstream errors")
}

func TestGeneratePublishesEvent(t *testing.T) {
	store := &fakeResumeStore{}
	svc := NewService(store, &fakeLLM{text: "ok"})

	var published []queue.SummaryGeneratedEvent
	svc.Publish = func(_ context.Context, ev queue.SummaryGeneratedEvent) error {
		published = append(published, ev)
		return nil
	}

	rec, err := svc.Generate(context.Background(), 9, Request{Skills: "Go", Length: 5})
	require.NoError(t, err)
	require.Len(t, published, 1)
	assert.Equal(t, rec.ID, published[0].ResumeID)
	assert.Equal(t, uint64(9), published[0].UserID)
	assert.Equal(t, 5, published[0].Length)
}

func TestGeneratePublishFailureIgnored(t *testing.T) {
	store := &fakeResumeStore{}
	svc := NewService(store, &fakeLLM{text: "ok"})
	svc.Publish = func(context.Context, queue.SummaryGeneratedEvent) error {
		return errors.New("broker down")
	}

	_, err := svc.Generate(context.Background(), 1, Request{Skills: "Go"})
	assert.NoError(t, err, "publish failures never fail the request")
}

func TestListForUserNewestFirst(t *testing.T) {
	store := &fakeResumeStore{}
	svc := NewService(store, &fakeLLM{text: "ok"})

	first, err := svc.Generate(context.Background(), 1, Request{Skills: "Go"})
	require.NoError(t, err)
	second, err := svc.Generate(context.Background(), 1, Request{Skills: "Rust"})
	require.NoError(t, err)
	_, err = svc.Generate(context.Background(), 2, Request{Skills: "Zig"})
	require.NoError(t, err)

	list, err := svc.ListForUser(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
}

func TestListForUserEmpty(t *testing.T) {
	svc := NewService(&fakeResumeStore{}, &fakeLLM{})
	list, err := svc.ListForUser(context.Background(), 42)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}
