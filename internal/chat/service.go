// Package chat simulates conversations with other members. There is no
// delivery or persistence contract: transcripts are deterministic fixtures
// seeded per (viewer, peer) pair, and Send only appends to the in-memory
// transcript for the life of the process.
package chat

import (
	"strings"
	"sync"
	"time"

	"foundermap/internal/domain"
	"foundermap/internal/roster"
)

// sidebarConversations is how many mock threads the messaging sidebar shows.
const sidebarConversations = 3

// Service hands out mock transcripts and conversation summaries.
type Service struct {
	store *roster.Store

	mu          sync.Mutex
	transcripts map[string][]domain.Message
	now         func() time.Time
}

// NewService creates the mock chat service over the roster.
func NewService(store *roster.Store) *Service {
	return &Service{
		store:       store,
		transcripts: make(map[string][]domain.Message),
		now:         time.Now,
	}
}

func pairKey(viewerID, peerID string) string {
	return viewerID + "|" + peerID
}

// Transcript returns the conversation between viewer and peer, seeding the
// mock fixture on first access. The seeded transcript is stable across
// calls for the same pair.
func (s *Service) Transcript(viewerID, peerID string) ([]domain.Message, error) {
	viewer, err := s.store.ByID(viewerID)
	if err != nil {
		return nil, err
	}
	peer, err := s.store.ByID(peerID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := pairKey(viewerID, peerID)
	if msgs, ok := s.transcripts[key]; ok {
		return msgs, nil
	}

	msgs := s.seedTranscript(&viewer, &peer)
	s.transcripts[key] = msgs
	return msgs, nil
}

// Send appends a message from the viewer to the pair's transcript. Empty
// or whitespace-only messages are rejected.
func (s *Service) Send(viewerID, peerID, content string) (domain.Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return domain.Message{}, domain.ErrValidation("message must not be empty")
	}
	if _, err := s.Transcript(viewerID, peerID); err != nil {
		return domain.Message{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	msg := domain.Message{
		ID:        domain.NewID(),
		SenderID:  viewerID,
		Content:   content,
		Timestamp: s.now(),
	}
	key := pairKey(viewerID, peerID)
	s.transcripts[key] = append(s.transcripts[key], msg)
	return msg, nil
}

// Conversations returns the viewer's mock thread summaries for the
// messaging sidebar: the first few peers in roster order. A thread the
// viewer has opened or written to previews its latest message; untouched
// threads show the static teaser.
func (s *Service) Conversations(viewerID string) ([]domain.Conversation, error) {
	if _, err := s.store.ByID(viewerID); err != nil {
		return nil, err
	}

	others := s.store.Others(viewerID)
	if len(others) > sidebarConversations {
		others = others[:sidebarConversations]
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	out := make([]domain.Conversation, 0, len(others))
	for i := range others {
		peer := &others[i]
		last := "Hi there! I saw your profile and..."
		updated := now.Add(-2 * time.Hour)
		if msgs := s.transcripts[pairKey(viewerID, peer.ID)]; len(msgs) > 0 {
			tail := msgs[len(msgs)-1]
			last = tail.Content
			updated = tail.Timestamp
		}
		out = append(out, domain.Conversation{
			PeerID:      peer.ID,
			PeerName:    peer.Name,
			PeerAvatar:  peer.Avatar,
			LastMessage: last,
			UpdatedAt:   updated,
			Unread:      unreadFor(peer.ID),
		})
	}
	return out, nil
}

// unreadFor derives a stable mock unread count from the peer id.
func unreadFor(peerID string) int {
	sum := 0
	for _, r := range peerID {
		sum += int(r)
	}
	return sum % 3
}

func (s *Service) seedTranscript(viewer, peer *domain.DirectoryEntry) []domain.Message {
	subject := viewer.StartupName()
	if subject == "" {
		subject = "your startup"
	}

	base := s.now()
	return []domain.Message{
		{
			ID:        domain.NewID(),
			SenderID:  peer.ID,
			Content:   "Hi there! I saw your profile and I'm impressed with your work on " + subject + ". Would love to connect!",
			Timestamp: base.Add(-24 * time.Hour),
		},
		{
			ID:        domain.NewID(),
			SenderID:  viewer.ID,
			Content:   "Thanks for reaching out! I'd be happy to chat more about potential collaboration opportunities.",
			Timestamp: base.Add(-23 * time.Hour),
		},
		{
			ID:        domain.NewID(),
			SenderID:  peer.ID,
			Content:   "Great! I'm particularly interested in your experience with product development. Do you have time for a quick call this week?",
			Timestamp: base.Add(-22 * time.Hour),
		},
	}
}
