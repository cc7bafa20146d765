package profile

import (
	"go-personnel/internal/absence"
	"go-personnel/internal/evaluation"
	"go-personnel/internal/laborhistory"
	"go-personnel/internal/personnel"
	"go-personnel/internal/sanction"
	"go-personnel/internal/separation"
	"go-personnel/internal/training"
)

// Profile is an officer with every record list the profile screen shows.
// Lists are never nil.
type Profile struct {
	personnel.PersonnelResponse
	Evaluaciones  []evaluation.EvaluationResponse `json:"evaluaciones"`
	Formacion     []training.Training             `json:"formacion"`
	Historial     []laborhistory.Entry            `json:"historial"`
	Incapacidades []absence.Absence               `json:"incapacidades"`
	Estimulos     []sanction.Sanction             `json:"estimulos"`
	Separacion    []separation.Separation         `json:"separacion"`
}
