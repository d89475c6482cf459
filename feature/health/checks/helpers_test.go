package checks

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"testing"

	"github.com/stretchr/testify/require"
)

func generateKey(t *testing.T) (*rsa.PrivateKey, string) {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	der, err := x509.MarshalPKCS8PrivateKey(key)
	require.NoError(t, err)
	return key, string(pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der}))
}

func serviceAccountJSON(t *testing.T, key, tokenURI string) string {
	t.Helper()
	data, err := json.Marshal(map[string]string{
		"type":           "service_account",
		"client_email":   "bot@example.iam.gserviceaccount.com",
		"private_key_id": "test",
		"private_key":    key,
		"token_uri":      tokenURI,
	})
	require.NoError(t, err)
	return string(data)
}
