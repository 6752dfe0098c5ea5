package reveal

import "errors"

// ErrEmptyRoomCode is returned when the room code is empty after trimming.
var ErrEmptyRoomCode = errors.New("room code must not be empty")

// ErrInvalidSlotCount is returned when the configured slot count is not positive.
var ErrInvalidSlotCount = errors.New("slot count must be positive")

// ErrSlotOutOfRange is returned when the chosen slot is outside [1, slot count].
var ErrSlotOutOfRange = errors.New("chosen slot is outside the configured slot range")

// ErrInvalidWindow is returned when the round window length is not positive.
var ErrInvalidWindow = errors.New("round window must be a positive number of seconds")
