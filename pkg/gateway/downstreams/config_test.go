package downstreams

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name           string
		conf           Config
		expectedFields map[string]string
	}{
		{
			name: "Should accept a complete configuration",
			conf: Config{BaseUrl: "https://api.example.test", Login: "L", Password: "P"},
		},
		{
			name: "Should accept plain http base urls",
			conf: Config{BaseUrl: "http://localhost:9091", Login: "L", Password: "P"},
		},
		{
			name: "Should reject an empty login",
			conf: Config{BaseUrl: "https://api.example.test", Login: "", Password: "P"},
			expectedFields: map[string]string{
				"login": "must not be empty",
			},
		},
		{
			name: "Should reject a base url with trailing slash",
			conf: Config{BaseUrl: "https://api.example.test/", Login: "L", Password: "P"},
			expectedFields: map[string]string{
				"base_url": "base url must start with http:// or https:// and may not end in a /",
			},
		},
		{
			name: "Should report every missing field",
			conf: Config{},
			expectedFields: map[string]string{
				"base_url": "must not be empty",
				"login":    "must not be empty",
				"password": "must not be empty",
			},
		},
		{
			name: "Should reject a base url without scheme",
			conf: Config{BaseUrl: "kittycat", Login: "L", Password: "P"},
			expectedFields: map[string]string{
				"base_url": "base url must start with http:// or https:// and may not end in a /",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.conf.Validate()
			if tt.expectedFields == nil {
				require.NoError(t, err)
				return
			}

			var confErr *ConfigurationError
			require.True(t, errors.As(err, &confErr))
			require.Equal(t, tt.expectedFields, confErr.Fields)
		})
	}
}

func TestConfigurationErrorMessageIsSorted(t *testing.T) {
	err := Config{}.Validate()
	require.EqualError(t, err, "configuration error: base_url: must not be empty, login: must not be empty, password: must not be empty")
}
