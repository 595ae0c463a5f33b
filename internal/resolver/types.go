package resolver

import "vif/internal/model"

// Input carries everything the resolver embeds into one prompt.
type Input struct {
	Utterance string
	Emoji     string           // user-picked emoji, may be empty
	Todos     []model.TodoItem // the currently visible day's items only
	ModelKey  string           // opaque model key, empty means default chain
	Timezone  string           // IANA identifier, empty means configured default
}

// batchEnvelope is the wire shape the model is asked to produce.
type batchEnvelope struct {
	Actions []actionPayload `json:"actions"`
}

// actionPayload mirrors todo.Action field for field. Keeping a separate wire
// struct lets schema validation and decoding stay local to this package.
type actionPayload struct {
	Action      string `json:"action"`
	Text        string `json:"text,omitempty"`
	TodoID      string `json:"todoId,omitempty"`
	Emoji       string `json:"emoji,omitempty"`
	TargetDate  string `json:"targetDate,omitempty"`
	Time        string `json:"time,omitempty"`
	SortBy      string `json:"sortBy,omitempty"`
	Status      string `json:"status,omitempty"`
	ListToClear string `json:"listToClear,omitempty"`
}
