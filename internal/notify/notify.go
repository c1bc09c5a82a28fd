// Package notify is the transient notification channel of the editing
// surface. Every asynchronous action surfaces a three-phase notice
// (pending, then success or error) on an in-process event bus; the
// phases of one attempt share a correlation id.
package notify

import (
	"time"

	EventBus "github.com/asaskevich/EventBus"
	"github.com/bwmarrin/snowflake"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// TopicNotices is the bus topic notices are published on.
const TopicNotices = "site.notices"

type Phase string

const (
	PhasePending Phase = "pending"
	PhaseSuccess Phase = "success"
	PhaseError   Phase = "error"
)

// Notice is one transient message shown to the user.
type Notice struct {
	ID      string    `json:"id"`
	Action  string    `json:"action"`
	Phase   Phase     `json:"phase"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

type Bus struct {
	bus  EventBus.Bus
	node *snowflake.Node
}

func NewBus(nodeID int64) (*Bus, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, errors.Wrap(err, "snowflake node")
	}
	return &Bus{bus: EventBus.New(), node: node}, nil
}

// Begin publishes the pending notice for an action and returns the
// correlation id its success or error phase must reuse.
func (b *Bus) Begin(action, message string) string {
	id := b.node.Generate().String()
	b.publish(Notice{ID: id, Action: action, Phase: PhasePending, Message: message})
	return id
}

func (b *Bus) Success(id, action, message string) {
	b.publish(Notice{ID: id, Action: action, Phase: PhaseSuccess, Message: message})
}

func (b *Bus) Error(id, action, message string) {
	b.publish(Notice{ID: id, Action: action, Phase: PhaseError, Message: message})
}

func (b *Bus) publish(n Notice) {
	n.At = time.Now()
	zap.L().Info("notice",
		zap.String("id", n.ID),
		zap.String("action", n.Action),
		zap.String("phase", string(n.Phase)),
		zap.String("message", n.Message))
	b.bus.Publish(TopicNotices, n)
}

// Subscribe registers a synchronous notice handler.
func (b *Bus) Subscribe(fn func(Notice)) error {
	return b.bus.Subscribe(TopicNotices, fn)
}

func (b *Bus) Unsubscribe(fn func(Notice)) error {
	return b.bus.Unsubscribe(TopicNotices, fn)
}
