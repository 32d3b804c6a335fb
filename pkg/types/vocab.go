package types

// Source types. Every tracked literature item is exactly one of these.
const (
	SourcePaper   = "paper"
	SourceWebpage = "webpage"
	SourceBook    = "book"
	SourceVideo   = "video"
	SourceBlog    = "blog"
)

// SourceTypeValues lists the valid source types in declaration order.
// Used for schema CHECK generation and adapter help text.
var SourceTypeValues = []string{
	SourcePaper,
	SourceWebpage,
	SourceBook,
	SourceVideo,
	SourceBlog,
}

// Identifier types. Keys of a source's identifiers mapping.
const (
	IdentifierArxiv           = "arxiv"
	IdentifierDOI             = "doi"
	IdentifierISBN            = "isbn"
	IdentifierURL             = "url"
	IdentifierSemanticScholar = "semantic_scholar"
)

// IdentifierTypeValues lists the valid identifier types in declaration order.
var IdentifierTypeValues = []string{
	IdentifierArxiv,
	IdentifierDOI,
	IdentifierISBN,
	IdentifierURL,
	IdentifierSemanticScholar,
}

// Reading statuses. A source moves freely between these; there is no
// transition graph.
const (
	StatusUnread    = "unread"
	StatusReading   = "reading"
	StatusCompleted = "completed"
	StatusArchived  = "archived"
)

// StatusValues lists the valid statuses in declaration order.
var StatusValues = []string{
	StatusUnread,
	StatusReading,
	StatusCompleted,
	StatusArchived,
}

// Relation types. The semantic nature of a source-to-entity link.
const (
	RelationDiscusses  = "discusses"
	RelationIntroduces = "introduces"
	RelationExtends    = "extends"
	RelationEvaluates  = "evaluates"
	RelationApplies    = "applies"
	RelationCritiques  = "critiques"
)

// RelationTypeValues lists the valid relation types in declaration order.
var RelationTypeValues = []string{
	RelationDiscusses,
	RelationIntroduces,
	RelationExtends,
	RelationEvaluates,
	RelationApplies,
	RelationCritiques,
}

// validSourceTypes is the set of recognized source type values.
var validSourceTypes = toSet(SourceTypeValues)

// validIdentifierTypes is the set of recognized identifier type values.
var validIdentifierTypes = toSet(IdentifierTypeValues)

// validStatuses is the set of recognized status values.
var validStatuses = toSet(StatusValues)

// validRelationTypes is the set of recognized relation type values.
var validRelationTypes = toSet(RelationTypeValues)

// ValidSourceType reports whether s is a member of the source type vocabulary.
func ValidSourceType(s string) bool { return validSourceTypes[s] }

// ValidIdentifierType reports whether s is a member of the identifier type
// vocabulary.
func ValidIdentifierType(s string) bool { return validIdentifierTypes[s] }

// ValidStatus reports whether s is a member of the status vocabulary.
func ValidStatus(s string) bool { return validStatuses[s] }

// ValidRelationType reports whether s is a member of the relation type
// vocabulary.
func ValidRelationType(s string) bool { return validRelationTypes[s] }

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
