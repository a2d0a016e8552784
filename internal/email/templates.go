package email

import (
	"bytes"
	"html/template"
)

var verificationTemplate = template.Must(template.New("verification").Parse(`
<div style="font-family: sans-serif; max-width: 500px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #0d9488;">Welcome to SkillBridge{{if .Name}}, {{.Name}}{{end}}!</h2>
  <p>Please verify your email by clicking the button below:</p>
  <a href="{{.VerifyURL}}" style="display: inline-block; background: #0d9488; color: white; padding: 12px 24px; border-radius: 6px; text-decoration: none; margin: 16px 0;">Verify Email</a>
  <p style="color: #666; font-size: 14px;">If you didn't create an account, you can safely ignore this email.</p>
</div>
`))

func renderVerificationEmail(name, verifyURL string) (string, error) {
	var buf bytes.Buffer
	err := verificationTemplate.Execute(&buf, struct {
		Name      string
		VerifyURL string
	}{Name: name, VerifyURL: verifyURL})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
