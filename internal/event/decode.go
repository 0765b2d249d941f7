package event

import "encoding/json"

// DecodePayload returns the payload as T. Payloads published on the MemoryBus already
// are T; payloads read back from a journal are maps and go through a JSON round-trip.
func DecodePayload[T any](input interface{}) (T, error) {
	if v, ok := input.(T); ok {
		return v, nil
	}
	var result T
	data, err := json.Marshal(input)
	if err != nil {
		return result, err
	}
	err = json.Unmarshal(data, &result)
	return result, err
}
