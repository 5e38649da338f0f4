package i18n

var es = map[string]string{
	// Navigation
	"nav.findExams": "Buscar Exámenes",
	"nav.schedule":  "Programar",
	"nav.account":   "Cuenta",
	"nav.profile":   "Perfil",
	"nav.myExams":   "Mis Exámenes Programados",
	"nav.signOut":   "Cerrar Sesión",
	"nav.signIn":    "Iniciar Sesión",

	// Home page
	"home.title":       "Reserve Su Imagen Médica",
	"home.subtitle":    "Cita Hoy",
	"home.description": "Programación rápida y fácil para todas sus necesidades de imágenes médicas. Encuentre el centro más cercano y reserve su cita en minutos.",
	"home.search":      "Buscar",
	"home.services":    "Servicios de Diagnóstico Disponibles",
	"home.viewAll":     "Ver Todos los Servicios",

	// Exam names and descriptions
	"exam.blood_test.name":         "Análisis de Sangre",
	"exam.blood_test.description":  "Análisis completo de sangre para evaluar la salud general y detectar anomalías.",
	"exam.x_ray.name":              "Rayos X",
	"exam.x_ray.description":       "Imágenes diagnósticas rápidas y eficientes para exámenes de huesos y tórax.",
	"exam.mri.name":                "Resonancia Magnética",
	"exam.mri.description":         "Imágenes de resonancia magnética de alta resolución para un examen interno detallado del cuerpo.",
	"exam.ct_scan.name":            "Tomografía Computarizada",
	"exam.ct_scan.description":     "Escaneo avanzado de tomografía computarizada para imágenes transversales del cuerpo.",
	"exam.ultrasound.name":         "Ultrasonido",
	"exam.ultrasound.description":  "Técnica de imagen no invasiva que utiliza ondas sonoras para visualizar órganos internos.",
	"exam.endoscopy.name":          "Endoscopia",
	"exam.endoscopy.description":   "Examen de órganos internos utilizando un tubo flexible con una cámara.",
	"exam.colonoscopy.name":        "Colonoscopia",
	"exam.colonoscopy.description": "Examen del colon y del intestino grueso utilizando un tubo flexible con una cámara.",
	"exam.mammogram.name":          "Mamografía",
	"exam.mammogram.description":   "Imágenes de rayos X del seno para detectar signos tempranos de cáncer de mama.",
	"exam.other.name":              "Otro Examen",
	"exam.other.description":       "Procedimiento diagnóstico especializado adaptado a necesidades médicas específicas.",

	// Auth page
	"auth.createAccount": "Crear una Cuenta",
	"auth.welcomeBack":   "Bienvenido de Nuevo",
	"auth.fullName":      "Nombre Completo",
	"auth.email":         "Correo Electrónico",
	"auth.password":      "Contraseña",
	"auth.signUp":        "Registrarse",
	"auth.signIn":        "Iniciar Sesión",

	// Search page
	"search.title":        "Buscar Exámenes Médicos",
	"search.label":        "Buscar",
	"search.examType":     "Tipo de Examen",
	"search.allTypes":     "Todos los Tipos",
	"search.city":         "Ciudad",
	"search.allCities":    "Todas las Ciudades",
	"search.scheduleExam": "Programar Examen",
	"search.noResults":    "No se encontraron exámenes. Intente una búsqueda diferente.",

	// Exam types
	"examType.blood_test":  "Análisis de Sangre",
	"examType.x_ray":       "Rayos X",
	"examType.mri":         "Resonancia",
	"examType.ct_scan":     "Tomografía",
	"examType.ultrasound":  "Ultrasonido",
	"examType.endoscopy":   "Endoscopia",
	"examType.colonoscopy": "Colonoscopia",
	"examType.mammogram":   "Mamografía",
	"examType.other":       "Otro",

	// My Exams page
	"myExams.title":      "Mis Exámenes Programados",
	"myExams.noExams":    "Aún no tiene exámenes programados.",
	"myExams.exam":       "Examen",
	"myExams.laboratory": "Laboratorio",
	"myExams.date":       "Fecha",
	"myExams.time":       "Hora",
	"myExams.status":     "Estado",
	"myExams.price":      "Precio",

	// Language
	"language.english":    "Inglés",
	"language.portuguese": "Portugués",
	"language.spanish":    "Español",
}
