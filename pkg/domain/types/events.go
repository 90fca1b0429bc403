package types

// EventTopic names a cross-component signal emitted by the persistence
// layer. Collaborators subscribe through the event bus instead of a
// shared mutable global.
type EventTopic string

const (
	TopicScenarioChanged   EventTopic = "scenario.changed"
	TopicFileStatusChanged EventTopic = "file.status_changed"
)

func (t EventTopic) String() string {
	return string(t)
}
