package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	"depositbri/internal/repository"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const invoiceSubject = "Invoice Bank BRI - Deposit"

var invoiceTmpl = template.Must(template.New("invoice").Parse(`<html>
<body>
    <h2>Invoice Bank BRI - Deposit</h2>
    <p>Kepada: {{.Username}}</p>
    <p>Email: {{.Email}}</p>
    <hr>
    <p>Saldo Deposito: Rp {{.Deposito}}</p>
    <p>Saldo Tabungan: Rp {{.Tabungan}}</p>
    <hr>
    <p>Tanggal: {{.Date}}</p>
    <p>Terima kasih telah menggunakan layanan BRI.</p>
</body>
</html>
`))

type invoiceData struct {
	Username string
	Email    string
	Deposito string
	Tabungan string
	Date     string
}

// InvoiceService composes the balance invoice for the bank user and hands it to a Mailer.
type InvoiceService struct {
	users        *repository.UserRepository
	mailer       Mailer
	bankUsername string
	now          func() time.Time
	printer      *message.Printer
}

func NewInvoiceService(users *repository.UserRepository, mailer Mailer, bankUsername string) *InvoiceService {
	return &InvoiceService{
		users:        users,
		mailer:       mailer,
		bankUsername: bankUsername,
		now:          time.Now,
		printer:      message.NewPrinter(language.English),
	}
}

// Compose renders the invoice for the bank user. It returns the recipient and HTML body.
func (s *InvoiceService) Compose() (to, body string, err error) {
	u, err := s.users.GetByUsername(s.bankUsername)
	if err != nil {
		return "", "", err
	}
	var buf bytes.Buffer
	err = invoiceTmpl.Execute(&buf, invoiceData{
		Username: u.Username,
		Email:    u.Email,
		Deposito: s.printer.Sprintf("%d", u.Deposito),
		Tabungan: s.printer.Sprintf("%d", u.Tabungan),
		Date:     s.now().Format("02/01/2006 15:04"),
	})
	if err != nil {
		return "", "", fmt.Errorf("render invoice: %w", err)
	}
	return u.Email, buf.String(), nil
}

func (s *InvoiceService) Send(ctx context.Context) error {
	to, body, err := s.Compose()
	if err != nil {
		return err
	}
	if err := s.mailer.Send(ctx, to, invoiceSubject, body); err != nil {
		return fmt.Errorf("send invoice: %w", err)
	}
	return nil
}
