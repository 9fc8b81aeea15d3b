package articles_test

import (
	"testing"
	"time"

	articles "github.com/goliatone/go-articles"
	"github.com/stretchr/testify/assert"
)

func TestExpirationTime(t *testing.T) {
	stamp := articles.ExpirationTime(60 * time.Minute)

	parsed, err := time.Parse(articles.ExpiryTimeLayout, stamp)
	assert.NoError(t, err)

	expected := time.Now().UTC().Add(60 * time.Minute)
	assert.WithinDuration(t, expected, parsed, 5*time.Second)
}

func TestIsExpired(t *testing.T) {
	tests := []struct {
		name      string
		expiresAt string
		expected  bool
		expectErr bool
	}{
		{
			name:      "Future expiry",
			expiresAt: time.Now().UTC().Add(time.Hour).Format(articles.ExpiryTimeLayout),
			expected:  false,
			expectErr: false,
		},
		{
			name:      "Past expiry",
			expiresAt: time.Now().UTC().Add(-time.Hour).Format(articles.ExpiryTimeLayout),
			expected:  true,
			expectErr: false,
		},
		{
			name:      "Just inside the window",
			expiresAt: time.Now().UTC().Add(10 * time.Second).Format(articles.ExpiryTimeLayout),
			expected:  false,
			expectErr: false,
		},
		{
			name:      "Just past the window",
			expiresAt: time.Now().UTC().Add(-10 * time.Second).Format(articles.ExpiryTimeLayout),
			expected:  true,
			expectErr: false,
		},
		{
			name:      "Unparseable value",
			expiresAt: "not-a-timestamp",
			expected:  false,
			expectErr: true,
		},
		{
			name:      "Empty value",
			expiresAt: "",
			expected:  false,
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := articles.IsExpired(tt.expiresAt)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}
