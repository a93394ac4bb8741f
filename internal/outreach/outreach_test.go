package outreach

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/hireboard/internal/events"
	"github.com/thenoetrevino/hireboard/internal/models"
	"github.com/thenoetrevino/hireboard/internal/notify"
)

var alice = models.Candidate{ID: "c1", Name: "Alice Johnson", Role: "Frontend Dev", Score: 85}

func TestParseTone(t *testing.T) {
	tests := []struct {
		in      string
		want    Tone
		wantErr bool
	}{
		{"", ToneProfessional, false},
		{"friendly", ToneFriendly, false},
		{"BRIEF", ToneBrief, false},
		{"sarcastic", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTone(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownTone)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKindFor(t *testing.T) {
	k, ok := KindFor(models.ColumnRejected)
	assert.True(t, ok)
	assert.Equal(t, KindRejection, k)

	k, ok = KindFor(models.ColumnInterview)
	assert.True(t, ok)
	assert.Equal(t, KindInvitation, k)

	for _, col := range []models.ColumnID{models.ColumnNew, models.ColumnScreening, models.ColumnOffer} {
		_, ok := KindFor(col)
		assert.False(t, ok, col)
	}
}

func TestGenerate_Templates(t *testing.T) {
	tests := []struct {
		kind   Kind
		tone   Tone
		prefix string
		suffix string
	}{
		{KindRejection, ToneProfessional, "Dear Alice Johnson,", "Sincerely,\nHiring Manager"},
		{KindInvitation, ToneProfessional, "Dear Alice Johnson,", "Best regards,\nHiring Manager"},
		{KindRejection, ToneFriendly, "Hi Alice Johnson 👋,", "Warmly,\nThe Hiring Team"},
		{KindInvitation, ToneFriendly, "Hi Alice Johnson! 🚀,", "Cheers,\nThe Hiring Team"},
		{KindRejection, ToneBrief, "Hi Alice Johnson,", "Best,\nHiring Team"},
		{KindInvitation, ToneBrief, "Hi Alice Johnson,", "Best,\nHiring Team"},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind)+"/"+string(tt.tone), func(t *testing.T) {
			body := Generate(alice, tt.kind, tt.tone)
			assert.True(t, strings.HasPrefix(body, tt.prefix), body)
			assert.True(t, strings.HasSuffix(body, tt.suffix), body)
			assert.NotContains(t, body, "lack of")
		})
	}
}

func TestGenerate_MentionsRole(t *testing.T) {
	assert.Contains(t, Generate(alice, KindRejection, ToneProfessional), "Frontend Dev position")
	assert.Contains(t, Generate(alice, KindInvitation, ToneFriendly), "Frontend Dev role")
}

func TestGenerate_IsStable(t *testing.T) {
	first := Generate(alice, KindRejection, ToneFriendly)
	for range 5 {
		assert.Equal(t, first, Generate(alice, KindRejection, ToneFriendly))
	}
}

func TestGenerate_UnknownToneFallsBackToProfessional(t *testing.T) {
	assert.Equal(t,
		Generate(alice, KindInvitation, ToneProfessional),
		Generate(alice, KindInvitation, Tone("whatever")))
}

func TestGenerateAll(t *testing.T) {
	bob := models.Candidate{ID: "c2", Name: "Bob Smith", Role: "Backend Dev"}

	assert.Empty(t, GenerateAll(nil, KindRejection, ToneBrief))
	assert.Equal(t, Generate(bob, KindRejection, ToneBrief), GenerateAll([]models.Candidate{bob}, KindRejection, ToneBrief))

	got := GenerateAll([]models.Candidate{alice, bob}, KindRejection, ToneBrief)
	want := "Bulk outreach drafts:\n\n" +
		"--- Role: Frontend Dev ---\n" + Generate(alice, KindRejection, ToneBrief) +
		"\n\n" +
		"--- Role: Backend Dev ---\n" + Generate(bob, KindRejection, ToneBrief)
	assert.Equal(t, want, got)
}

func TestDrafter_Observe(t *testing.T) {
	d := NewDrafter("")
	var seen []Draft
	d.OnDraft(func(dr Draft) { seen = append(seen, dr) })

	d.Observe(events.Transition{CandidateID: "c1", Card: alice, Source: models.ColumnNew, Target: models.ColumnScreening})
	_, ok := d.Current()
	assert.False(t, ok, "screening needs no draft")

	d.Observe(events.Transition{CandidateID: "c1", Card: alice, Source: models.ColumnScreening, Target: models.ColumnInterview})
	draft, ok := d.Current()
	require.True(t, ok)
	assert.Equal(t, KindInvitation, draft.Kind)
	assert.Equal(t, ToneProfessional, draft.Tone)
	assert.Equal(t, Generate(alice, KindInvitation, ToneProfessional), draft.Body)
	assert.Len(t, seen, 1)

	d.SetTone(ToneBrief)
	draft, _ = d.Current()
	assert.Equal(t, Generate(alice, KindInvitation, ToneBrief), draft.Body)

	d.Dismiss()
	_, ok = d.Current()
	assert.False(t, ok)
	assert.Equal(t, ToneBrief, d.Tone())
}

type recorder struct {
	mu   sync.Mutex
	msgs []string
}

func (r *recorder) Notify(level notify.Level, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if level == notify.LevelSuccess {
		r.msgs = append(r.msgs, message)
	}
}

func TestCelebrate_OncePerEntryIntoOffer(t *testing.T) {
	rec := &recorder{}
	bus := events.NewBus()
	bus.Subscribe(Celebrate(rec))

	bus.Publish(events.Transition{CandidateID: "c1", Card: alice, Source: models.ColumnInterview, Target: models.ColumnOffer})
	bus.Publish(events.Transition{CandidateID: "c1", Card: alice, Source: models.ColumnOffer, Target: models.ColumnOffer})
	bus.Publish(events.Transition{CandidateID: "c1", Card: alice, Source: models.ColumnOffer, Target: models.ColumnRejected})

	require.Len(t, rec.msgs, 1)
	assert.Contains(t, rec.msgs[0], "Alice Johnson")
}
