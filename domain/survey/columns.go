package survey

// ColumnKind classifies how a column participates in filtering and
// aggregation.
type ColumnKind string

const (
	KindIdentifier  ColumnKind = "identifier"
	KindNumeric     ColumnKind = "numeric"
	KindCategorical ColumnKind = "categorical"
	KindText        ColumnKind = "text"
)

// Canonical column names of the graduate survey.
const (
	ColID               = "ID"
	ColAge              = "Âge"
	ColSex              = "Sexe"
	ColDegree           = "Diplôme"
	ColField            = "Q1_Domaine"
	ColInternship       = "Q2_Stage"
	ColDifficulty       = "Q3_Difficulté"
	ColComputerSkill    = "Q4_Informatique"
	ColLanguages        = "Q5_Langues"
	ColSalary           = "Q6_Salaire_ZAR"
	ColMobility         = "Q7_Mobilité"
	ColTraining         = "Q8_Formation"
	ColEntrepreneurship = "Q9_Entreprenariat"
	ColLinkedIn         = "Q10_LinkedIn"
	ColApplications     = "Q11_Candidatures"
	ColMentorship       = "Q12_Mentorat"
)

// catalogue classifies the known survey columns. Columns outside the
// catalogue are treated as free text.
var catalogue = map[string]ColumnKind{
	ColID:               KindIdentifier,
	ColAge:              KindNumeric,
	ColSex:              KindCategorical,
	ColDegree:           KindCategorical,
	ColField:            KindText,
	ColInternship:       KindCategorical,
	ColDifficulty:       KindCategorical,
	ColComputerSkill:    KindCategorical,
	ColLanguages:        KindText,
	ColSalary:           KindNumeric,
	ColMobility:         KindCategorical,
	ColTraining:         KindNumeric,
	ColEntrepreneurship: KindCategorical,
	ColLinkedIn:         KindCategorical,
	ColApplications:     KindNumeric,
	ColMentorship:       KindCategorical,
}

// DefaultColumns is the canonical column order of the survey file, used when
// a brand-new source has to be created by the appender.
var DefaultColumns = []string{
	ColID, ColAge, ColSex, ColDegree,
	ColField, ColInternship, ColDifficulty, ColComputerSkill,
	ColLanguages, ColSalary, ColMobility, ColTraining,
	ColEntrepreneurship, ColLinkedIn, ColApplications, ColMentorship,
}

// KindOf returns the catalogued kind of a column, KindText for unknown ones.
func KindOf(column string) ColumnKind {
	if kind, ok := catalogue[column]; ok {
		return kind
	}
	return KindText
}
