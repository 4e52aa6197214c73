package jscookie

import (
	"fmt"

	"github.com/aatuh/jscookie/internal/logger"
)

// SetValue marshals v with the jar's codec and stores it under key.
func (j *Jar) SetValue(key string, v any, attrs ...Attributes) (string, error) {
	if j.store == nil {
		return "", ErrStoreUnavailable
	}
	data, err := j.codec.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encode cookie %q: %w", key, err)
	}
	raw, _ := j.Set(key, string(data), attrs...)
	return raw, nil
}

// GetValue reads key and unmarshals it into dst with the jar's codec.
func (j *Jar) GetValue(key string, dst any) error {
	if j.store == nil {
		return ErrStoreUnavailable
	}
	value, ok := j.Get(key)
	if !ok {
		return ErrNotFound
	}
	if err := j.codec.Unmarshal([]byte(value), dst); err != nil {
		j.logger.Warn("cookie value could not be decoded",
			logger.Cookie(key),
			logger.Codec(j.codec),
			logger.Error(err),
		)
		return fmt.Errorf("decode cookie %q: %w", key, err)
	}
	return nil
}
