// Package spreadsheet reconciles weakly-labeled tabular input into
// well-formed equipment records: fuzzy column-name matching, merged-cell
// fill-down of the identifying tag, and per-tag aggregation of rows into
// multiple named test groups.
package spreadsheet

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"metrologia_avc/internal/domain/entities"
)

// Row holds one spreadsheet row as header → displayed cell value, preserving
// the sheet's column order so "first matching column" is well defined. Values
// come in as text: the reader keeps what the spreadsheet shows (so "±0,5" and
// formatted dates survive).
type Row struct {
	headers []string
	cells   map[string]string
}

// NewRow builds a row from alternating header/value pairs, in column order.
func NewRow(pairs ...string) Row {
	r := Row{cells: make(map[string]string, len(pairs)/2)}
	for i := 0; i+1 < len(pairs); i += 2 {
		r.Set(pairs[i], pairs[i+1])
	}
	return r
}

// Set appends a column. Re-setting a header overwrites its value without
// changing its position.
func (r *Row) Set(header, value string) {
	if r.cells == nil {
		r.cells = make(map[string]string)
	}
	if _, ok := r.cells[header]; !ok {
		r.headers = append(r.headers, header)
	}
	r.cells[header] = value
}

// Candidate header names, tried in priority order.
var (
	tagCandidates          = []string{"codigo", "tag", "id", "identificacao"}
	testNameCandidates     = []string{"tipo", "ensaio", "grandeza", "complemento", "subtipo"}
	testNameFallback       = []string{"faixa", "range"}
	nameCandidates         = []string{"descricao", "nome", "equipamento", "instrumento"}
	manufacturerCandidates = []string{"marca", "fabricante"}
	modelCandidates        = []string{"modelo"}
	serialCandidates       = []string{"serie", "serial", "sn"}
	rangeCandidates        = []string{"faixa", "range", "capacidade"}
	resolutionCandidates   = []string{"resolucao"}
	locationCandidates     = []string{"localizacao", "setor", "area"}
	supplierCandidates     = []string{"fornecedor", "laboratorio", "calibrado"}
	openingCandidates      = []string{"abertura", "pressure"}
	closingCandidates      = []string{"fechamento", "blowdown"}
	nextCalCandidates      = []string{"proxima", "vencimento", "validade"}

	// Word roots so partial headers like "Valor Tolerância (mm)" still match.
	accuracyCandidates = []string{
		"criterio",
		"tolerancia",
		"tol",
		"erro",
		"ema",
		"exatidao",
		"classe",
		"accuracy",
		"limite",
	}
)

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// normalizeHeader lowercases, trims, strips diacritics and drops everything
// that is not a letter or digit, so "Valor Tolerância (mm)" becomes
// "valortoleranciamm".
func normalizeHeader(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if out, _, err := transform.String(stripMarks, s); err == nil {
		s = out
	}
	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FindColumnValue resolves a semantic column against arbitrary headers.
// A header matches when its normalized form contains the normalized
// candidate as a substring; candidates are tried in priority order and ""
// is returned when nothing matches.
func FindColumnValue(row Row, candidates []string) string {
	for _, name := range candidates {
		target := normalizeHeader(name)
		for _, key := range row.headers {
			if strings.Contains(normalizeHeader(key), target) {
				return row.cells[key]
			}
		}
	}
	return ""
}

var invalidTagChar = regexp.MustCompile(`[^a-zA-Z0-9-_]`)

// SanitizeTag turns a free-text tag into a document-id-safe token.
func SanitizeTag(tag string) string {
	return strings.ToUpper(invalidTagChar.ReplaceAllString(strings.TrimSpace(tag), "_"))
}

var (
	brDatePattern  = regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{4}$`)
	isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// excelEpochOffset is the day count between the spreadsheet serial epoch
// (1899-12-30) and the Unix epoch.
const excelEpochOffset = 25569

// NormalizeDate accepts DD/MM/YYYY, ISO YYYY-MM-DD, or a spreadsheet date
// serial greater than 20000, and yields ISO. Anything else (including blank)
// defaults to one year from today.
func NormalizeDate(raw string, today time.Time) string {
	s := strings.TrimSpace(raw)
	switch {
	case brDatePattern.MatchString(s):
		parts := strings.Split(s, "/")
		day, _ := strconv.Atoi(parts[0])
		month, _ := strconv.Atoi(parts[1])
		return fmt.Sprintf("%s-%02d-%02d", parts[2], month, day)
	case isoDatePattern.MatchString(s):
		return s
	}
	if serial, err := strconv.ParseFloat(s, 64); err == nil && serial > 20000 {
		t := time.Unix(int64((serial-excelEpochOffset)*86400), 0).UTC()
		return t.Format("2006-01-02")
	}
	return today.AddDate(1, 0, 0).Format("2006-01-02")
}

// ReconcileRows aggregates spreadsheet rows into one equipment per distinct
// tag, in first-encounter order.
//
// Blank tags continue the previous row's tag (merged-cell fill-down); a blank
// tag with no predecessor gets a synthesized placeholder. Rows sharing a tag
// contribute additional test-group names to the already-built record instead
// of creating a new one.
func ReconcileRows(rows []Row, now time.Time) []entities.Equipment {
	byID := make(map[string]*entities.Equipment)
	var order []string
	lastValidTag := ""

	for index, row := range rows {
		tag := strings.TrimSpace(FindColumnValue(row, tagCandidates))
		switch {
		case tag == "" && lastValidTag != "":
			tag = lastValidTag
		case tag != "":
			lastValidTag = tag
		default:
			tag = fmt.Sprintf("IMP-%d-%d", now.UnixMilli(), index)
			lastValidTag = tag
		}

		docID := SanitizeTag(tag)

		testName := strings.TrimSpace(FindColumnValue(row, testNameCandidates))
		if testName == "" {
			testName = strings.TrimSpace(FindColumnValue(row, testNameFallback))
		}
		if testName == "" {
			testName = fmt.Sprintf("Teste %d", index+1)
		}

		if eq, ok := byID[docID]; ok {
			if !containsString(eq.DefaultTestGroups, testName) {
				eq.DefaultTestGroups = append(eq.DefaultTestGroups, testName)
			}
			continue
		}

		name := FindColumnValue(row, nameCandidates)
		if name == "" {
			name = "Sem Nome"
		}

		eq := &entities.Equipment{
			ID:                  docID,
			Tag:                 tag,
			Name:                name,
			Manufacturer:        FindColumnValue(row, manufacturerCandidates),
			Model:               FindColumnValue(row, modelCandidates),
			SerialNumber:        FindColumnValue(row, serialCandidates),
			Range:               FindColumnValue(row, rangeCandidates),
			Resolution:          FindColumnValue(row, resolutionCandidates),
			Accuracy:            FindColumnValue(row, accuracyCandidates),
			Location:            FindColumnValue(row, locationCandidates),
			Supplier:            FindColumnValue(row, supplierCandidates),
			Status:              entities.EquipmentStatusAtivo,
			NextCalibrationDate: NormalizeDate(FindColumnValue(row, nextCalCandidates), now),
			OpeningPressure:     FindColumnValue(row, openingCandidates),
			ClosingPressure:     FindColumnValue(row, closingCandidates),
			CreatedAt:           now.UTC().Format(time.RFC3339),
			DefaultTestGroups:   []string{testName},
		}
		byID[docID] = eq
		order = append(order, docID)
	}

	out := make([]entities.Equipment, 0, len(order))
	for _, id := range order {
		eq := *byID[id]
		// A record that only ever received an auto-generated placeholder
		// name should not carry a meaningless default.
		if len(eq.DefaultTestGroups) == 1 && strings.HasPrefix(eq.DefaultTestGroups[0], "Teste ") {
			eq.DefaultTestGroups = nil
		}
		out = append(out, eq)
	}
	return out
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
