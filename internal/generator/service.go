// Package generator implements the résumé-summary pipeline: input
// sanitization, prompt composition, the call to the external generation
// service, and persistence of the produced summary.
package generator

import (
	"context"
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/smartprofile/backend/internal/model"
	"github.com/smartprofile/backend/internal/queue"
)

// ErrEmptySkills is returned when the sanitized skills text is empty. The
// message doubles as the client-facing response. The upstream service is
// never contacted in this case.
var ErrEmptySkills = errors.New("Please provide skills.")

// ResumeStore persists generation records. *repository.ResumeRepo satisfies
// it; tests substitute an in-memory store.
type ResumeStore interface {
	Create(ctx context.Context, res *model.Resume) (uint64, error)
	ListByUser(ctx context.Context, userID uint64) ([]model.Resume, error)
}

// TextGenerator produces text for a composed prompt. *Client satisfies it.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Length is a lenient integer: it accepts a JSON number or a numeric string
// and decodes anything else (null, text, objects) as zero, which the service
// treats as "use the default". Mirrors loose clients that send "3" for 3.
type Length int

func (l *Length) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		*l = Length(f)
	} else {
		*l = 0
	}
	return nil
}

// Request carries the raw, untrusted generation inputs as received from the
// client.
type Request struct {
	Skills     string `json:"skills"`
	Tone       string `json:"tone"`
	Experience string `json:"experience"`
	Length     Length `json:"length"`
	Role       string `json:"role"`
}

// Service wires the pipeline together. Publish is optional; when set it is
// invoked best-effort after a successful generation and its error is only
// logged, never surfaced to the caller.
type Service struct {
	Resumes ResumeStore
	LLM     TextGenerator
	Publish func(ctx context.Context, ev queue.SummaryGeneratedEvent) error
}

func NewService(resumes ResumeStore, llm TextGenerator) *Service {
	return &Service{Resumes: resumes, LLM: llm}
}

// Generate sanitizes and bounds the inputs, calls the generation service and
// persists the result. It returns the stored record, whose fields reflect the
// sanitized and clamped values actually used.
func (s *Service) Generate(ctx context.Context, userID uint64, req Request) (model.Resume, error) {
	skills := Truncate(Sanitize(req.Skills), MaxSkillsLen)
	role := Truncate(Sanitize(req.Role), MaxRoleLen)
	if skills == "" {
		return model.Resume{}, ErrEmptySkills
	}

	tone := req.Tone
	if tone == "" {
		tone = "professional"
	}
	experience := req.Experience
	if experience == "" {
		experience = "student"
	}
	sentences := int(req.Length)
	if sentences == 0 {
		sentences = DefaultSentences
	}
	sentences = ClampSentences(sentences)

	prompt := BuildPrompt(skills, role, tone, experience, sentences)
	summary, err := s.LLM.Generate(ctx, prompt)
	if err != nil {
		return model.Resume{}, err
	}

	rec := model.Resume{
		UserID:     userID,
		Skills:     skills,
		Role:       role,
		Tone:       tone,
		Experience: experience,
		Length:     sentences,
		Summary:    summary,
		CreatedAt:  time.Now().UTC(),
	}
	id, err := s.Resumes.Create(ctx, &rec)
	if err != nil {
		return model.Resume{}, err
	}
	rec.ID = id

	if s.Publish != nil {
		ev := queue.SummaryGeneratedEvent{
			ResumeID:    id,
			UserID:      userID,
			Role:        role,
			Tone:        tone,
			Length:      sentences,
			GeneratedAt: rec.CreatedAt.Format(time.RFC3339),
		}
		if err := s.Publish(ctx, ev); err != nil {
			log.Printf("generator: publish summary event failed: %v", err)
		}
	}
	return rec, nil
}

// ListForUser returns the caller's records, newest first.
func (s *Service) ListForUser(ctx context.Context, userID uint64) ([]model.Resume, error) {
	return s.Resumes.ListByUser(ctx, userID)
}
