package resolver

import (
	"encoding/json"
	"fmt"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// batchSchema is compiled once at startup. A compile failure is a programming
// error, not a runtime condition.
var batchSchema = jsonschema.MustCompileString("action_batch.json", actionBatchSchema)

// validateBatch checks raw model output against the action batch schema and
// decodes it on success. Validation is all or nothing: one malformed action
// rejects the whole reply.
func validateBatch(raw []byte) (*batchEnvelope, error) {
	var generic interface{}
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, fmt.Errorf("malformed JSON from model: %w", err)
	}

	if err := batchSchema.Validate(generic); err != nil {
		return nil, fmt.Errorf("model output violates action schema: %w", err)
	}

	var envelope batchEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("decode action batch: %w", err)
	}

	return &envelope, nil
}
