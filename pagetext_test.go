package pagetext_test

import (
	"testing"

	"github.com/fwojciec/pagetext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    pagetext.Format
		wantErr bool
	}{
		{
			name:  "html",
			input: "html",
			want:  pagetext.FormatHTML,
		},
		{
			name:  "txt",
			input: "txt",
			want:  pagetext.FormatText,
		},
		{
			name:    "markdown is not supported",
			input:   "md",
			wantErr: true,
		},
		{
			name:    "uppercase is not accepted",
			input:   "HTML",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := pagetext.ParseFormat(tt.input)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, pagetext.EINVALID, pagetext.ErrorCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFormat_ErrorListsValidFormats(t *testing.T) {
	t.Parallel()

	_, err := pagetext.ParseFormat("xml")

	require.Error(t, err)
	assert.Equal(t, "Invalid output format: xml. Valid formats: html, txt", pagetext.ErrorMessage(err))
}
