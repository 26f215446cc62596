package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const expectedRpiConfig = `[SETTINGS]
# Set the path to the location containing your certificates (root, private, claim certificate)
SECURE_CERT_PATH = ./certs

# Specify the names for the root cert, provisioning claim cert, and the private key.
ROOT_CERT = root.ca.pem
CLAIM_CERT = claim-certificate.pem.crt
SECURE_KEY = claim-private.pem.key

# Set the name of your IoT Endpoint
IOT_ENDPOINT = example-ats.iot.us-east-1.amazonaws.com

# Include the name for the provisioning template that was created in IoT Core
PRODUCTION_TEMPLATE = RpiTemplate
# Cert rotation not implemented
CERT_ROTATION_TEMPLATE = dummy-template-name
`

func TestClientConfig(t *testing.T) {
	t.Run("Test Render->RpiImageBuilder", func(t *testing.T) {
		config, err := newClientConfig(rpiImageBuilder, "example-ats.iot.us-east-1.amazonaws.com", "RpiTemplate").Render()
		require.NoError(t, err)
		assert.Equal(t, expectedRpiConfig, config)
	})

	t.Run("Test Render->BootstrapClient", func(t *testing.T) {
		config, err := newClientConfig(bootstrapClient, "e.iot", "FleetTemplate").Render()
		require.NoError(t, err)
		assert.Contains(t, config, "CLAIM_CERT = bootstrap-certificate.pem.crt\n")
		assert.Contains(t, config, "SECURE_KEY = bootstrap-private.pem.key\n")
	})

	t.Run("Test Render->Template and endpoint appear once", func(t *testing.T) {
		config, err := newClientConfig(rpiImageBuilder, " padded.iot \n", "RpiFleetTemplate").Render()
		require.NoError(t, err)
		assert.Equal(t, 1, strings.Count(config, "RpiFleetTemplate"))
		assert.Equal(t, 1, strings.Count(config, "padded.iot"))

		lines := strings.Split(config, "\n")
		assert.Equal(t, 1, countLines(lines, "PRODUCTION_TEMPLATE = RpiFleetTemplate"))
		assert.Equal(t, 1, countLines(lines, "IOT_ENDPOINT = padded.iot"))
		assert.Equal(t, 1, countLines(lines, "CERT_ROTATION_TEMPLATE = dummy-template-name"))
	})
}

func countLines(lines []string, want string) int {
	n := 0
	for _, l := range lines {
		if l == want {
			n++
		}
	}
	return n
}
