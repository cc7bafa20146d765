package personnel

import "time"

const (
	StatusActive   = "Activo"
	StatusInactive = "Inactivo"
)

// ValidStatus reports whether s is one of the two service states.
func ValidStatus(s string) bool {
	return s == StatusActive || s == StatusInactive
}

type Personnel struct {
	ID                 int       `gorm:"primaryKey;column:id"`
	ApellidoPaterno    string    `gorm:"column:apellido_paterno"`
	ApellidoMaterno    *string   `gorm:"column:apellido_materno"`
	Nombres            string    `gorm:"column:nombres"`
	FechaNacimiento    time.Time `gorm:"column:fecha_nacimiento;type:date"`
	FechaIngreso       time.Time `gorm:"column:fecha_ingreso;type:date"`
	GradoCargo         string    `gorm:"column:grado_cargo"`
	Sexo               string    `gorm:"column:sexo"`
	CURP               string    `gorm:"column:curp"`
	Escolaridad        string    `gorm:"column:escolaridad"`
	TelefonoContacto   string    `gorm:"column:telefono_contacto"`
	FotoPerfil         *string   `gorm:"column:foto_perfil"`
	Estatus            string    `gorm:"column:estatus;default:Activo"`
	FechaRegistro      time.Time `gorm:"column:fecha_registro;default:CURRENT_TIMESTAMP"`
	FechaActualizacion time.Time `gorm:"column:fecha_actualizacion;default:CURRENT_TIMESTAMP"`
}

func (Personnel) TableName() string {
	return "personal"
}
