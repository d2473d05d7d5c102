package constant

const (
	WizardStepDate = iota + 1
	WizardStepTimeSlot
	WizardStepZone
	WizardStepAddress
	WizardStepConfirm
)

const (
	ScheduleMissingDate     = "Por favor selecciona una fecha"
	ScheduleDateOutOfWindow = "La fecha debe estar entre %s y %s"
	ScheduleMissingTimeSlot = "Por favor selecciona un horario"
	ScheduleMissingZone     = "Por favor selecciona una zona de entrega"
	ScheduleMissingAddress  = "Por favor ingresa la dirección de entrega"
	ScheduleIncomplete      = "Información incompleta"
)
