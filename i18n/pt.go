package i18n

var pt = map[string]string{
	// Navigation
	"nav.findExams": "Encontrar Exames",
	"nav.schedule":  "Agendar",
	"nav.account":   "Conta",
	"nav.profile":   "Perfil",
	"nav.myExams":   "Meus Exames Agendados",
	"nav.signOut":   "Sair",
	"nav.signIn":    "Entrar",

	// Home page
	"home.title":       "Agende Seus Exames",
	"home.subtitle":    "de Imagem Médica Hoje",
	"home.description": "Agendamento rápido e fácil para todas as suas necessidades de imagem médica. Encontre o laboratório mais próximo e agende sua consulta em minutos.",
	"home.search":      "Pesquisar",
	"home.services":    "Serviços de Diagnóstico Disponíveis",
	"home.viewAll":     "Ver Todos os Serviços",

	// Exam names and descriptions
	"exam.blood_test.name":         "Exame de Sangue",
	"exam.blood_test.description":  "Análise completa de sangue para avaliar a saúde geral e detectar anormalidades.",
	"exam.x_ray.name":              "Raio-X",
	"exam.x_ray.description":       "Imagens diagnósticas rápidas e eficientes para exames ósseos e torácicos.",
	"exam.mri.name":                "Ressonância Magnética",
	"exam.mri.description":         "Imagem por ressonância magnética de alta resolução para exame detalhado interno do corpo.",
	"exam.ct_scan.name":            "Tomografia Computadorizada",
	"exam.ct_scan.description":     "Digitalização avançada de tomografia computadorizada para imagens de seção transversal do corpo.",
	"exam.ultrasound.name":         "Ultrassom",
	"exam.ultrasound.description":  "Técnica de imagem não invasiva usando ondas sonoras para visualizar órgãos internos.",
	"exam.endoscopy.name":          "Endoscopia",
	"exam.endoscopy.description":   "Exame de órgãos internos usando um tubo flexível com uma câmera.",
	"exam.colonoscopy.name":        "Colonoscopia",
	"exam.colonoscopy.description": "Exame do cólon e intestino grosso usando um tubo flexível com uma câmera.",
	"exam.mammogram.name":          "Mamografia",
	"exam.mammogram.description":   "Imagem de raios-X da mama para detectar sinais precoces de câncer de mama.",
	"exam.other.name":              "Outro Exame",
	"exam.other.description":       "Procedimento diagnóstico especializado adaptado a necessidades médicas específicas.",

	// Auth page
	"auth.createAccount": "Criar uma Conta",
	"auth.welcomeBack":   "Bem-vindo de Volta",
	"auth.fullName":      "Nome Completo",
	"auth.email":         "Email",
	"auth.password":      "Senha",
	"auth.signUp":        "Cadastrar",
	"auth.signIn":        "Entrar",

	// Search page
	"search.title":        "Encontrar Exames Médicos",
	"search.label":        "Pesquisar",
	"search.examType":     "Tipo de Exame",
	"search.allTypes":     "Todos os Tipos",
	"search.city":         "Cidade",
	"search.allCities":    "Todas as Cidades",
	"search.scheduleExam": "Agendar Exame",
	"search.noResults":    "Nenhum exame encontrado. Tente uma pesquisa diferente.",

	// Exam types
	"examType.blood_test":  "Exame de Sangue",
	"examType.x_ray":       "Raio-X",
	"examType.mri":         "Ressonância",
	"examType.ct_scan":     "Tomografia",
	"examType.ultrasound":  "Ultrassom",
	"examType.endoscopy":   "Endoscopia",
	"examType.colonoscopy": "Colonoscopia",
	"examType.mammogram":   "Mamografia",
	"examType.other":       "Outro",

	// My Exams page
	"myExams.title":      "Meus Exames Agendados",
	"myExams.noExams":    "Você ainda não tem exames agendados.",
	"myExams.exam":       "Exame",
	"myExams.laboratory": "Laboratório",
	"myExams.date":       "Data",
	"myExams.time":       "Hora",
	"myExams.status":     "Status",
	"myExams.price":      "Preço",

	// Language
	"language.english":    "Inglês",
	"language.portuguese": "Português",
	"language.spanish":    "Espanhol",
}
