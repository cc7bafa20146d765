package attachment

import "strings"

// Category selects the destination directory and the acceptance rules of an
// uploaded file.
type Category string

const (
	CategoryEvaluations  Category = "evaluaciones"
	CategoryTraining     Category = "formacion-inicial"
	CategoryCompetencies Category = "competencias-basicas"
	CategoryLaborHistory Category = "evaluacion-desempeno/historial-laboral"
	CategoryAbsences     Category = "evaluacion-desempeno/incapacidades-ausencias"
	CategorySanctions    Category = "evaluacion-desempeno/estimulos-sanciones"
	CategorySeparation   Category = "evaluacion-desempeno/separacion-servicio"
	CategoryPhotos       Category = "fotos"
)

const (
	MaxDocumentBytes int64 = 5 * 1024 * 1024
	MaxPhotoBytes    int64 = 2 * 1024 * 1024
)

type rule struct {
	prefix   string
	maxBytes int64
	// extension -> accepted declared MIME types; empty means any MIME type
	extensions map[string][]string
}

var pdfOnly = map[string][]string{".pdf": nil}

var rules = map[Category]rule{
	CategoryEvaluations:  {prefix: "evaluacion-", maxBytes: MaxDocumentBytes, extensions: pdfOnly},
	CategoryTraining:     {prefix: "formacion-", maxBytes: MaxDocumentBytes, extensions: pdfOnly},
	CategoryCompetencies: {prefix: "competencia-", maxBytes: MaxDocumentBytes, extensions: pdfOnly},
	CategoryLaborHistory: {prefix: "historial-", maxBytes: MaxDocumentBytes, extensions: pdfOnly},
	CategoryAbsences:     {prefix: "incapacidad-", maxBytes: MaxDocumentBytes, extensions: pdfOnly},
	CategorySanctions:    {prefix: "estimulo-", maxBytes: MaxDocumentBytes, extensions: pdfOnly},
	CategorySeparation:   {prefix: "separacion-", maxBytes: MaxDocumentBytes, extensions: pdfOnly},
	CategoryPhotos: {
		prefix:   "foto-",
		maxBytes: MaxPhotoBytes,
		extensions: map[string][]string{
			".jpg":  {"image/jpeg", "image/jpg"},
			".jpeg": {"image/jpeg", "image/jpg"},
			".png":  {"image/png"},
			".gif":  {"image/gif"},
		},
	},
}

// Categories lists every known category, used to prepare local directories.
func Categories() []Category {
	return []Category{
		CategoryEvaluations,
		CategoryTraining,
		CategoryCompetencies,
		CategoryLaborHistory,
		CategoryAbsences,
		CategorySanctions,
		CategorySeparation,
		CategoryPhotos,
	}
}

func (c Category) isPhoto() bool {
	return c == CategoryPhotos
}

func mimeAccepted(accepted []string, declared string) bool {
	if accepted == nil {
		return true
	}
	declared = strings.ToLower(strings.TrimSpace(strings.SplitN(declared, ";", 2)[0]))
	for _, m := range accepted {
		if m == declared {
			return true
		}
	}
	return false
}
