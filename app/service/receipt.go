package service

import (
	"bytes"
	"html/template"
	"strconv"
	"time"

	"github.com/TheQuantumSilver/ReceiptVakaGen/app/model"
)

// Receipt timestamps are rendered for the petitioners' region regardless
// of server locale.
var kolkata = func() *time.Location {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		return time.FixedZone("IST", 5*3600+30*60)
	}
	return loc
}()

const receiptHTML = `
<div style="font-family: Helvetica, sans-serif;">
    <p>Dear {{.Name}},</p>
    <p>Your payment for {{.Phase}} has been successfully confirmed.</p>
    <p><strong>Registration Details:</strong></p>
    <ul>
        <li><strong>Name:</strong> {{.Name}}</li>
        <li><strong>Petitioner Serial No.:</strong> {{.PetitionerNumber}}</li>
        <li><strong>Phase:</strong> {{.Group}}</li>
        <li><strong>Case:</strong> {{.CaseNumber}}</li>
        <li><strong>Department:</strong> {{.Department}}</li>
        <li><strong>Amount:</strong> {{.Amount}}</li><br>
        <li><strong>Payment ID:</strong> {{.PaymentID}}</li>
    </ul>
    <p><strong>NOTE:</strong> <em>You must take a screenshot of this email receipt and upload it to the google form. Failure
        to do so will result in your payment not being processed.</em></p>
    <p><strong>Google Form: </strong>https://forms.gle/yTp9UqVxYB6ERA4d8</p>
    <p><strong>Confirmed by:</strong> {{.ConfirmedBy}}
        <br><strong>Date:</strong> {{.ConfirmedAt}}
    </p>
    <p>Thank you!
        <br><strong>Core 0 Legal Team</strong>
    </p>
    <p> --- </p>
    <p><em>Please do not reply to this mail as this is a system generated mail.</em></p>
</div>
`

var receiptTmpl = template.Must(template.New("receipt").Parse(receiptHTML))

type receiptData struct {
	Name             string
	PetitionerNumber int
	Group            string
	CaseNumber       string
	Department       string
	Amount           string
	PaymentID        string
	ConfirmedBy      string
	ConfirmedAt      string
	Phase            string
}

func renderReceipt(p *model.Petitioner, meta model.CaseMeta, confirmedBy string) (string, error) {
	data := receiptData{
		Name:             p.Name,
		PetitionerNumber: p.PetitionerNumber,
		CaseNumber:       meta.CaseNumber,
		Department:       p.Department,
		Amount:           meta.AmountDisplay,
		ConfirmedBy:      confirmedBy,
		Phase:            meta.Phase,
	}
	if p.PetitionerGroup != nil {
		data.Group = strconv.Itoa(*p.PetitionerGroup)
	}
	if p.PaymentID != nil {
		data.PaymentID = *p.PaymentID
	}
	if p.ConfirmedAt != nil {
		data.ConfirmedAt = p.ConfirmedAt.In(kolkata).Format("2/1/2006, 3:04:05 pm")
	}

	var buf bytes.Buffer
	if err := receiptTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
