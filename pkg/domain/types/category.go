package types

// Category classifies a component type on the palette. Senders and
// receivers are the built-in endpoint categories; anything else (mappers,
// switches, custom modules) is unrestricted.
type Category string

const (
	CategorySender   Category = "Sender"
	CategoryReceiver Category = "Receiver"
	CategoryObject   Category = "Object"
)

// IsSender reports whether the category is subject to the
// one-sender-per-scenario placement rule.
func (c Category) IsSender() bool {
	return c == CategorySender
}

func (c Category) String() string {
	return string(c)
}
