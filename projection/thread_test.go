package projection

import (
	"companion-lab/domain"
	"fmt"
	"math/rand"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

const organizer = "org"

func question(id, author, content string) domain.Message {
	return domain.Message{ID: id, AuthorID: author, AuthorName: "name-" + author, AuthorAvatar: "avatar-" + author, Content: content}
}

func answer(id, to, content string) domain.Message {
	return domain.Message{ID: id, AuthorID: organizer, AuthorName: "Organizer", Content: content, ReplyToID: to}
}

func TestBuildThreads_Scenarios(t *testing.T) {
	tests := []struct {
		name     string
		messages []domain.Message
		expected map[string][]string
		order    []string
	}{
		{
			name:     "should return no thread for an empty consultation",
			messages: nil,
			order:    []string{},
		},
		{
			name:     "should open a thread for a single question",
			messages: []domain.Message{question("1", "u2", "Q1")},
			expected: map[string][]string{"u2": {"1"}},
			order:    []string{"u2"},
		},
		{
			name: "should group a question with its answer",
			messages: []domain.Message{
				question("1", "u2", "Q1"),
				answer("2", "u2", "A1"),
			},
			expected: map[string][]string{"u2": {"1", "2"}},
			order:    []string{"u2"},
		},
		{
			name:     "should drop an unsolicited organizer message",
			messages: []domain.Message{answer("1", "", "unsolicited")},
			order:    []string{},
		},
		{
			name: "should order threads by first appearance",
			messages: []domain.Message{
				question("1", "u2", "Q1"),
				answer("2", "u3", "A to u3"),
				question("3", "u3", "Q2"),
			},
			expected: map[string][]string{"u2": {"1"}, "u3": {"2", "3"}},
			order:    []string{"u2", "u3"},
		},
		{
			name: "should drop a message without author",
			messages: []domain.Message{
				{ID: "1", Content: "ghost"},
				question("2", "u2", "Q1"),
			},
			expected: map[string][]string{"u2": {"2"}},
			order:    []string{"u2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			threads := BuildThreads(tt.messages, organizer)
			if len(tt.order) == 0 {
				req.Empty(threads)
			}

			req.Equal(tt.order, lo.Map(threads, func(th Thread, _ int) string { return th.CounterpartID }))
			for _, th := range threads {
				ids := lo.Map(th.Messages, func(m domain.Message, _ int) string { return m.ID })
				req.Equal(tt.expected[th.CounterpartID], ids)
			}
		})
	}
}

func TestBuildThreads_Counterpart_Display(t *testing.T) {
	t.Run("should prefer an authored message over a cached reply name", func(t *testing.T) {
		req := require.New(t)
		reply := answer("1", "u2", "welcome")
		reply.ReplyToName = "stale name"
		messages := []domain.Message{reply, question("2", "u2", "thanks")}

		threads := BuildThreads(messages, organizer)

		req.Len(threads, 1)
		req.Equal(domain.Display{Name: "name-u2", Avatar: "avatar-u2"}, threads[0].Counterpart)
	})

	t.Run("should use the cached reply name when the counterpart never wrote", func(t *testing.T) {
		req := require.New(t)
		reply := answer("1", "u9", "are you coming?")
		reply.ReplyToName = "Leo"

		threads := BuildThreads([]domain.Message{reply}, organizer)

		req.Len(threads, 1)
		req.Equal(domain.Display{Name: "Leo", Avatar: PlaceholderAvatar}, threads[0].Counterpart)
	})

	t.Run("should fall back on the placeholder when nothing is known", func(t *testing.T) {
		req := require.New(t)

		threads := BuildThreads([]domain.Message{answer("1", "u9", "hello")}, organizer)

		req.Len(threads, 1)
		req.Equal(UnknownInquirer, threads[0].Counterpart.Name)
	})
}

func TestBuildThreads_Properties(t *testing.T) {
	req := require.New(t)
	rnd := rand.New(rand.NewSource(42))
	participants := []string{"u1", "u2", "u3", "u4", ""}

	for round := 0; round < 200; round++ {
		var messages []domain.Message
		n := rnd.Intn(30)
		for i := 0; i < n; i++ {
			id := fmt.Sprintf("m%d", i)
			if rnd.Intn(2) == 0 {
				messages = append(messages, answer(id, participants[rnd.Intn(len(participants))], "a"))
			} else {
				messages = append(messages, question(id, participants[rnd.Intn(len(participants)-1)], "q"))
			}
		}

		threads := BuildThreads(messages, organizer)

		// Conservation
		total := lo.SumBy(threads, func(th Thread) int { return len(th.Messages) })
		req.Equal(len(messages), total+CountUnattachable(messages, organizer))

		// Partition
		ids := lo.Map(threads, func(th Thread, _ int) string { return th.CounterpartID })
		req.Len(lo.Uniq(ids), len(ids))

		// Order preservation
		position := lo.SliceToMap(messages, func(m domain.Message) (string, int) {
			return m.ID, lo.IndexOf(messages, m)
		})
		for _, th := range threads {
			for i := 1; i < len(th.Messages); i++ {
				req.Less(position[th.Messages[i-1].ID], position[th.Messages[i].ID])
			}
		}

		// Idempotence
		req.Equal(threads, BuildThreads(messages, organizer))

		// Prefix stability
		if len(messages) > 0 {
			cut := rnd.Intn(len(messages))
			prefix := BuildThreads(messages[:cut], organizer)
			for i, th := range prefix {
				req.Equal(th.CounterpartID, threads[i].CounterpartID)
			}
		}
	}
}

func TestAppendReply(t *testing.T) {
	messages := []domain.Message{question("1", "u2", "Q1")}
	threads := BuildThreads(messages, organizer)

	t.Run("should address an organizer reply to the counterpart", func(t *testing.T) {
		req := require.New(t)
		sender := domain.UserProfile{ID: organizer, Name: "Organizer"}

		reply := AppendReply(threads, "u2", "A1", sender, organizer)

		req.NotEmpty(reply.ID)
		req.Equal(organizer, reply.AuthorID)
		req.Equal("u2", reply.ReplyToID)
		req.Equal("name-u2", reply.ReplyToName)
		req.Equal(domain.JustNow, reply.Timestamp)

		rebuilt := BuildThreads(append(messages, reply), organizer)
		req.Len(rebuilt, 1)
		req.Len(rebuilt[0].Messages, 2)
	})

	t.Run("should not address a counterpart follow-up", func(t *testing.T) {
		req := require.New(t)
		sender := domain.UserProfile{ID: "u2", Name: "name-u2"}

		reply := AppendReply(threads, "u2", "Q2", sender, organizer)

		req.Empty(reply.ReplyToID)
		req.Equal("u2", reply.AuthorID)
	})

	t.Run("should open a new thread at the end for an unseen counterpart", func(t *testing.T) {
		req := require.New(t)
		sender := domain.UserProfile{ID: organizer}

		reply := AppendReply(threads, "u7", "hello", sender, organizer)

		req.Empty(reply.ReplyToName)
		rebuilt := BuildThreads(append(messages, reply), organizer)
		req.Len(rebuilt, 2)
		req.Equal("u7", rebuilt[1].CounterpartID)
	})
}
