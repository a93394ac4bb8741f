// Package outreach drafts candidate emails from fixed templates when a
// card lands in a column that needs a message.
package outreach

import (
	"errors"
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/thenoetrevino/hireboard/internal/models"
)

// Kind is the purpose of a draft
type Kind string

const (
	KindRejection  Kind = "rejection"
	KindInvitation Kind = "invitation"
)

// Tone selects the template register
type Tone string

const (
	ToneProfessional Tone = "professional"
	ToneFriendly     Tone = "friendly"
	ToneBrief        Tone = "brief"
)

// Tones lists the supported tones, default first
var Tones = []Tone{ToneProfessional, ToneFriendly, ToneBrief}

// ErrUnknownTone is returned by ParseTone for names outside Tones
var ErrUnknownTone = errors.New("unknown outreach tone")

// ParseTone maps a name to a Tone. An empty name is the default tone.
func ParseTone(name string) (Tone, error) {
	if name == "" {
		return ToneProfessional, nil
	}
	for _, t := range Tones {
		if strings.EqualFold(name, string(t)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTone, name)
}

// KindFor returns the draft kind a transition into target calls for
func KindFor(target models.ColumnID) (Kind, bool) {
	switch target {
	case models.ColumnRejected:
		return KindRejection, true
	case models.ColumnInterview:
		return KindInvitation, true
	}
	return "", false
}

// Talking points until candidates carry their own analysis
var (
	strengths = []string{
		"Strong React experience",
		"Good communication skills",
		"Experience with modern CI/CD",
		"Solid understanding of algorithms",
	}
	weaknesses = []string{
		"Lack of deep Docker knowledge",
		"Limited experience with large-scale systems",
		"No experience with GraphQL",
		"Unfamiliar with Python",
	}
)

// pick chooses a stable entry for a candidate so regenerating a draft
// does not change its wording
func pick(items []string, candidateID, salt string) string {
	h := fnv.New32a()
	h.Write([]byte(salt))
	h.Write([]byte(candidateID))
	return items[h.Sum32()%uint32(len(items))]
}

func strengthOf(c models.Candidate) string {
	return strings.ToLower(pick(strengths, c.ID, "strength"))
}

func gapOf(c models.Candidate) string {
	w := strings.ToLower(pick(weaknesses, c.ID, "weakness"))
	return strings.Replace(w, "lack of ", "", 1)
}

// Generate renders a single draft
func Generate(c models.Candidate, kind Kind, tone Tone) string {
	rejection := kind == KindRejection

	switch tone {
	case ToneBrief:
		if rejection {
			return fmt.Sprintf("Hi %s,\n\nThank you for applying. After reviewing your profile, we have decided not to proceed. We are looking for someone with more %s experience.\n\nBest,\nHiring Team",
				c.Name, gapOf(c))
		}
		return fmt.Sprintf("Hi %s,\n\nWe'd like to invite you for an interview! Your profile looks great. Let us know when you're available.\n\nBest,\nHiring Team",
			c.Name)

	case ToneFriendly:
		if rejection {
			return fmt.Sprintf("Hi %s 👋,\n\nThanks so much for your interest in the %s position! We really appreciated getting to know your background.\n\nWhile we were impressed by your %s, we're currently looking for a candidate with more depth in %s.\n\nWe'll keep your resume on file for future openings!\n\nWarmly,\nThe Hiring Team",
				c.Name, c.Role, strengthOf(c), gapOf(c))
		}
		return fmt.Sprintf("Hi %s! 🚀,\n\nWe're super excited about your application for the %s role! Your experience with %s really stood out to us.\n\nWe'd love to chat more in an interview. When would be a good time for you this week?\n\nCheers,\nThe Hiring Team",
			c.Name, c.Role, strengthOf(c))
	}

	if rejection {
		return fmt.Sprintf("Dear %s,\n\nThank you for giving us the opportunity to review your application for the %s position.\n\nAlthough your background is impressive, specifically your %s, we have decided to move forward with other candidates who have stronger expertise in %s.\n\nWe wish you the best in your job search.\n\nSincerely,\nHiring Manager",
			c.Name, c.Role, strengthOf(c), gapOf(c))
	}
	return fmt.Sprintf("Dear %s,\n\nWe have reviewed your application for the %s position and would like to invite you to an interview.\n\nYour experience with %s aligns well with what we are looking for. Please let us know your availability for a call in the coming days.\n\nBest regards,\nHiring Manager",
		c.Name, c.Role, strengthOf(c))
}

// BulkHeader opens a multi-candidate draft
const BulkHeader = "Bulk outreach drafts:"

// GenerateAll renders one draft per candidate. A single candidate gets a
// plain draft, several get a role-labelled section each.
func GenerateAll(cs []models.Candidate, kind Kind, tone Tone) string {
	switch len(cs) {
	case 0:
		return ""
	case 1:
		return Generate(cs[0], kind, tone)
	}

	sections := make([]string, 0, len(cs))
	for _, c := range cs {
		sections = append(sections, fmt.Sprintf("--- Role: %s ---\n%s", c.Role, Generate(c, kind, tone)))
	}
	return BulkHeader + "\n\n" + strings.Join(sections, "\n\n")
}
