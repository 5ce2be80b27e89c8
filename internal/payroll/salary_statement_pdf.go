package payroll

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// renderSalaryStatement lays out a one page A4 salary statement.
func renderSalaryStatement(orgName string, d PayrollDetail, issued time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(false)
	pdf.SetCreationDate(issued)
	pdf.SetTitle(orgName+" - Salary Statement", true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, orgName+" - Salary Statement")
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "", 12)
	for _, line := range []string{
		"Employee ID: " + d.EmployeeID,
		"Name: " + d.EmployeeName,
		"Department: " + d.Department,
		"Designation: " + d.Designation,
	} {
		pdf.Cell(0, 8, line)
		pdf.Ln(7)
	}
	pdf.Ln(5)
	pdf.Cell(0, 8, "Monthly gross salary: "+formatMinorUnits(d.GrossSalary))
	pdf.Ln(7)
	pdf.Cell(0, 8, "Annual gross salary: "+formatMinorUnits(d.GrossSalary*12))
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.Cell(0, 8, "Issued: "+issued.Format("2006-01-02"))

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func formatMinorUnits(v int64) string {
	sign := ""
	if v < 0 {
		sign, v = "-", -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}
