package profile

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

const (
	linesPerPage = 52
	maxLineRunes = 95
	na           = "N/A"
)

// pdfDocument collects text lines and lays them out on A4 pages of
// Helvetica in WinAnsi encoding.
type pdfDocument struct {
	lines []string
}

func (d *pdfDocument) line(format string, args ...any) {
	text := fmt.Sprintf(format, args...)
	for len([]rune(text)) > maxLineRunes {
		r := []rune(text)
		d.lines = append(d.lines, string(r[:maxLineRunes]))
		text = "    " + string(r[maxLineRunes:])
	}
	d.lines = append(d.lines, text)
}

func (d *pdfDocument) blank() {
	d.lines = append(d.lines, "")
}

func (d *pdfDocument) section(title string) {
	d.blank()
	d.line("%s", strings.ToUpper(title))
	d.line("%s", strings.Repeat("-", 60))
}

func (d *pdfDocument) table(headers []string, rows [][]string) {
	d.line("%s", strings.Join(headers, " | "))
	for _, row := range rows {
		d.line("%s", strings.Join(row, " | "))
	}
}

func (d *pdfDocument) pages() [][]string {
	var out [][]string
	for start := 0; start < len(d.lines); start += linesPerPage {
		end := min(start+linesPerPage, len(d.lines))
		out = append(out, d.lines[start:end])
	}
	if len(out) == 0 {
		out = append(out, []string{""})
	}
	return out
}

func renderProfilePDF(p Profile) ([]byte, error) {
	return renderProfilePDFAt(p, time.Now())
}

func renderProfilePDFAt(p Profile, now time.Time) ([]byte, error) {
	var d pdfDocument
	d.line("SECRETARÍA DE SEGURIDAD CIUDADANA")
	d.line("PERFIL DEL POLICÍA")
	d.line("Generado el: %s", now.Format("02/01/2006"))

	d.section("Información personal")
	d.line("Nombre Completo: %s", p.FullName())
	d.line("CURP: %s", orNA(p.CURP))
	d.line("Grado/Cargo: %s", orNA(p.GradoCargo))
	d.line("Fecha de Ingreso: %s", dateText(p.FechaIngreso))
	d.line("Escolaridad: %s", orNA(p.Escolaridad))
	d.line("Estatus: %s", orNA(p.Estatus))

	if len(p.Evaluaciones) > 0 {
		d.section("Evaluaciones de control")
		rows := make([][]string, 0, len(p.Evaluaciones))
		for _, e := range p.Evaluaciones {
			vigente := "No"
			if e.EsVigente {
				vigente = "Sí"
			}
			rows = append(rows, []string{orNA(e.CUIP), orNA(e.TipoEvaluacion), formatDate(e.FechaEvaluacion.Time), orNA(e.Resultado), vigente})
		}
		d.table([]string{"CUIP", "Tipo de Evaluación", "Fecha", "Resultado", "Vigente"}, rows)
	}

	if len(p.Formacion) > 0 {
		d.section("Formación inicial")
		rows := make([][]string, 0, len(p.Formacion))
		for _, t := range p.Formacion {
			rows = append(rows, []string{orNA(t.Curso), orNA(t.Tipo), ptrOrNA(t.Institucion), formatDate(t.Fecha.Time), orNA(t.Resultado)})
		}
		d.table([]string{"Curso", "Tipo", "Institución", "Fecha", "Resultado"}, rows)
	}

	if len(p.Historial) > 0 {
		d.section("Historial laboral")
		rows := make([][]string, 0, len(p.Historial))
		for _, h := range p.Historial {
			vigencia := na
			if h.CUPVigencia != nil {
				vigencia = formatDate(h.CUPVigencia.Time)
			}
			rows = append(rows, []string{orNA(h.CUP), vigencia, orNA(h.Funcion), ptrOrNA(h.Periodo)})
		}
		d.table([]string{"CUP", "Vigencia CUP", "Función", "Periodo"}, rows)
	}

	if len(p.Incapacidades) > 0 {
		d.section("Incapacidades/Ausencias")
		rows := make([][]string, 0, len(p.Incapacidades))
		for _, a := range p.Incapacidades {
			rows = append(rows, []string{orNA(a.Motivo), orNA(a.Fechas), ptrOrNA(a.TrayectoriaInstitucional)})
		}
		d.table([]string{"Motivo", "Fechas", "Trayectoria Institucional"}, rows)
	}

	if len(p.Estimulos) > 0 {
		d.section("Estímulos/Sanciones")
		rows := make([][]string, 0, len(p.Estimulos))
		for _, s := range p.Estimulos {
			rows = append(rows, []string{orNA(s.Tipo), formatDate(s.Fecha.Time), ptrOrNA(s.Fundamento), ptrOrNA(s.Motivo), ptrOrNA(s.Resultado), ptrOrNA(s.Cumplimiento)})
		}
		d.table([]string{"Tipo", "Fecha", "Fundamento", "Motivo", "Resultado", "Cumplimiento"}, rows)
	}

	if len(p.Separacion) > 0 {
		d.section("Separación de servicio")
		rows := make([][]string, 0, len(p.Separacion))
		for _, s := range p.Separacion {
			rows = append(rows, []string{orNA(s.Motivo), formatDate(s.FechaBaja.Time)})
		}
		d.table([]string{"Motivo", "Fecha de Baja"}, rows)
	}

	return buildPDF(d.pages())
}

func buildPDF(pages [][]string) ([]byte, error) {
	enc := encoding.ReplaceUnsupported(charmap.Windows1252.NewEncoder())

	// 1 catalog, 2 pages, 3 font, then a page and content object per page.
	kids := make([]string, len(pages))
	for i := range pages {
		kids[i] = fmt.Sprintf("%d 0 R", 4+2*i)
	}
	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(pages)),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>",
	}

	for i, lines := range pages {
		var content strings.Builder
		content.WriteString("BT\n/F1 11 Tf\n14 TL\n50 800 Td\n")
		for j, line := range lines {
			text, err := enc.String(line)
			if err != nil {
				return nil, fmt.Errorf("encode pdf line: %w", err)
			}
			if j > 0 {
				content.WriteString("T* ")
			}
			fmt.Fprintf(&content, "(%s) Tj\n", pdfEscape(text))
		}
		footer, err := enc.String(fmt.Sprintf("Página %d de %d", i+1, len(pages)))
		if err != nil {
			return nil, fmt.Errorf("encode pdf footer: %w", err)
		}
		fmt.Fprintf(&content, "ET\nBT\n/F1 9 Tf\n480 30 Td\n(%s) Tj\nET", pdfEscape(footer))

		stream := content.String()
		objects = append(objects,
			fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 595 842] /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>", 5+2*i),
			fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream),
		)
	}

	var out bytes.Buffer
	out.WriteString("%PDF-1.4\n")
	offsets := make([]int, 0, len(objects))
	for i, obj := range objects {
		offsets = append(offsets, out.Len())
		fmt.Fprintf(&out, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xrefStart := out.Len()
	fmt.Fprintf(&out, "xref\n0 %d\n", len(objects)+1)
	out.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&out, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&out, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF", len(objects)+1, xrefStart)

	return out.Bytes(), nil
}

var pdfEscaper = strings.NewReplacer(`\`, `\\`, "(", `\(`, ")", `\)`)

func pdfEscape(v string) string {
	return pdfEscaper.Replace(v)
}

func orNA(v string) string {
	if strings.TrimSpace(v) == "" {
		return na
	}
	return v
}

func ptrOrNA(v *string) string {
	if v == nil {
		return na
	}
	return orNA(*v)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return na
	}
	return t.Format("02/01/2006")
}

// dateText reformats a YYYY-MM-DD response date.
func dateText(v string) string {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return orNA(v)
	}
	return formatDate(t)
}
