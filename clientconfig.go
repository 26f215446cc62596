package main

import (
	"bytes"
	"embed"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

const rootCertFilename = "root.ca.pem"

//go:embed templates/config.ini.tmpl
var templateFS embed.FS

var configTemplate = template.Must(
	template.New("config.ini.tmpl").Funcs(sprig.TxtFuncMap()).ParseFS(templateFS, "templates/config.ini.tmpl"),
)

// clientConfig holds the values of the provisioning client's config.ini.
type clientConfig struct {
	RootCert           string
	ClaimCert          string
	SecureKey          string
	Endpoint           string
	ProductionTemplate string
	// RotationTemplate stays empty: certificate rotation is not implemented
	// and the client gets a placeholder name.
	RotationTemplate string
}

func newClientConfig(kind resourceKind, endpoint, templateName string) clientConfig {
	return clientConfig{
		RootCert:           rootCertFilename,
		ClaimCert:          kind.CertFilename,
		SecureKey:          kind.KeyFilename,
		Endpoint:           endpoint,
		ProductionTemplate: templateName,
	}
}

// Render returns the config.ini text.
func (c clientConfig) Render() (string, error) {
	var buf bytes.Buffer
	if err := configTemplate.Execute(&buf, c); err != nil {
		return "", err
	}
	return buf.String(), nil
}
