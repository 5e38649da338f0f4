package i18n

var en = map[string]string{
	// Navigation
	"nav.findExams": "Find Exams",
	"nav.schedule":  "Schedule",
	"nav.account":   "Account",
	"nav.profile":   "Profile",
	"nav.myExams":   "My Scheduled Exams",
	"nav.signOut":   "Sign Out",
	"nav.signIn":    "Sign In",

	// Home page
	"home.title":       "Book Your Medical Imaging",
	"home.subtitle":    "Appointment Today",
	"home.description": "Fast and easy scheduling for all your medical imaging needs. Find the nearest facility and book your appointment in minutes.",
	"home.search":      "Search",
	"home.services":    "Available Diagnostic Services",
	"home.viewAll":     "View All Services",

	// Exam names and descriptions
	"exam.blood_test.name":         "Blood Test",
	"exam.blood_test.description":  "Comprehensive blood analysis to assess overall health and detect abnormalities.",
	"exam.x_ray.name":              "X-Ray",
	"exam.x_ray.description":       "Quick and efficient diagnostic imaging for bones and chest examinations.",
	"exam.mri.name":                "MRI Scan",
	"exam.mri.description":         "High-resolution magnetic resonance imaging for detailed internal body examination.",
	"exam.ct_scan.name":            "CT Scan",
	"exam.ct_scan.description":     "Advanced computed tomography scanning for cross-sectional body imaging.",
	"exam.ultrasound.name":         "Ultrasound",
	"exam.ultrasound.description":  "Non-invasive imaging technique using sound waves to visualize internal organs.",
	"exam.endoscopy.name":          "Endoscopy",
	"exam.endoscopy.description":   "Examination of internal organs using a flexible tube with a camera.",
	"exam.colonoscopy.name":        "Colonoscopy",
	"exam.colonoscopy.description": "Examination of the colon and large intestine using a flexible tube with a camera.",
	"exam.mammogram.name":          "Mammogram",
	"exam.mammogram.description":   "X-ray imaging of the breast to detect early signs of breast cancer.",
	"exam.other.name":              "Other Exam",
	"exam.other.description":       "Specialized diagnostic procedure tailored to specific medical needs.",

	// Auth page
	"auth.createAccount": "Create an Account",
	"auth.welcomeBack":   "Welcome Back",
	"auth.fullName":      "Full Name",
	"auth.email":         "Email",
	"auth.password":      "Password",
	"auth.signUp":        "Sign Up",
	"auth.signIn":        "Sign In",

	// Search page
	"search.title":        "Find Medical Exams",
	"search.label":        "Search",
	"search.examType":     "Exam Type",
	"search.allTypes":     "All Types",
	"search.city":         "City",
	"search.allCities":    "All Cities",
	"search.scheduleExam": "Schedule Exam",
	"search.noResults":    "No exams found. Please try a different search.",

	// Exam types
	"examType.blood_test":  "Blood Test",
	"examType.x_ray":       "X-Ray",
	"examType.mri":         "MRI",
	"examType.ct_scan":     "CT Scan",
	"examType.ultrasound":  "Ultrasound",
	"examType.endoscopy":   "Endoscopy",
	"examType.colonoscopy": "Colonoscopy",
	"examType.mammogram":   "Mammogram",
	"examType.other":       "Other",

	// My Exams page
	"myExams.title":      "My Scheduled Exams",
	"myExams.noExams":    "You don't have any scheduled exams yet.",
	"myExams.exam":       "Exam",
	"myExams.laboratory": "Laboratory",
	"myExams.date":       "Date",
	"myExams.time":       "Time",
	"myExams.status":     "Status",
	"myExams.price":      "Price",

	// Language
	"language.english":    "English",
	"language.portuguese": "Portuguese",
	"language.spanish":    "Spanish",
}
