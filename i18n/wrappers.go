package i18n

// Namespaced lookup helpers. Each builds a dot-namespaced key, resolves it
// through Tr, and treats a result equal to the raw key as "no translation",
// returning the caller-supplied fallback (or the input itself) instead.
// Description-style helpers additionally treat an empty value as missing,
// which makes a legitimately empty translation indistinguishable from an
// absent one — a known limitation of the convention.

// trOr resolves key and returns fallback when no translation exists.
func (s *Store) trOr(key, fallback string) string {
	if v := s.Tr(key); v != key {
		return v
	}
	return fallback
}

// trOrSkipEmpty resolves key and returns fallback when no translation
// exists or the translated value is empty.
func (s *Store) trOrSkipEmpty(key, fallback string) string {
	if v := s.Tr(key); v != key && v != "" {
		return v
	}
	return fallback
}

// TrCategory returns the translated outfit/ship category name.
// Key is "category." + category.
func (s *Store) TrCategory(category string) string {
	return s.trOr("category."+category, category)
}

// TrFormation returns the translated formation name.
// Key is "formation." + name.
func (s *Store) TrFormation(name string) string {
	return s.trOr("formation."+name, name)
}

// TrGovernment returns the translated government display name.
// Key is "government." + displayName.
func (s *Store) TrGovernment(displayName string) string {
	return s.trOr("government."+displayName, displayName)
}

// TrSeries returns the translated outfit/ship series name.
// Key is "series." + name.
func (s *Store) TrSeries(name string) string {
	return s.trOr("series."+name, name)
}

// TrStartName returns the translated start scenario name.
// Key is "start.name." + identifier.
func (s *Store) TrStartName(identifier, fallback string) string {
	return s.trOr("start.name."+identifier, fallback)
}

// TrStartDescription returns the translated start scenario description.
// Key is "start.desc." + identifier.
func (s *Store) TrStartDescription(identifier, fallback string) string {
	return s.trOr("start.desc."+identifier, fallback)
}

// TrPhrase returns the translated phrase. Key is "phrase." + name.
// Placeholders such as <planet> must be preserved in the translation.
func (s *Store) TrPhrase(name, fallback string) string {
	return s.trOr("phrase."+name, fallback)
}

// TrMissionDescription returns the translated mission description.
// Key is "mission.desc." + identifier.
func (s *Store) TrMissionDescription(identifier, fallback string) string {
	return s.trOr("mission.desc."+identifier, fallback)
}

// TrOutfitName returns the translated outfit display name.
// Key is "outfit.name." + trueName.
func (s *Store) TrOutfitName(trueName, fallback string) string {
	return s.trOr("outfit.name."+trueName, fallback)
}

// TrOutfitPluralName returns the translated outfit plural name.
// Key is "outfit.plural." + trueName.
func (s *Store) TrOutfitPluralName(trueName, fallback string) string {
	return s.trOr("outfit.plural."+trueName, fallback)
}

// TrOutfitDescription returns the translated outfit description.
// Key is "outfit.desc." + trueName.
func (s *Store) TrOutfitDescription(trueName, fallback string) string {
	return s.trOr("outfit.desc."+trueName, fallback)
}

// TrShipName returns the translated ship model display name.
// Key is "ship.name." + trueModelName.
func (s *Store) TrShipName(trueModelName, fallback string) string {
	return s.trOr("ship.name."+trueModelName, fallback)
}

// TrShipPluralName returns the translated ship model plural name.
// Key is "ship.plural." + trueModelName.
func (s *Store) TrShipPluralName(trueModelName, fallback string) string {
	return s.trOr("ship.plural."+trueModelName, fallback)
}

// TrShipDescription returns the translated ship description.
// Key is "ship.desc." + trueModelName.
func (s *Store) TrShipDescription(trueModelName, fallback string) string {
	return s.trOrSkipEmpty("ship.desc."+trueModelName, fallback)
}

// TrPlanetDescription returns the translated planet description.
// Key is "planet.desc." + planetTrueName.
func (s *Store) TrPlanetDescription(planetTrueName, fallback string) string {
	return s.trOrSkipEmpty("planet.desc."+planetTrueName, fallback)
}

// TrSpaceportDescription returns the translated spaceport description.
// Key is "planet.spaceport." + planetTrueName.
func (s *Store) TrSpaceportDescription(planetTrueName, fallback string) string {
	return s.trOrSkipEmpty("planet.spaceport."+planetTrueName, fallback)
}

// TrSubstitutionValue translates a text-substitution value based on its
// placeholder key: commodities, governments, planet and system names.
// Values for unknown placeholder keys pass through unchanged.
func (s *Store) TrSubstitutionValue(key, value string) string {
	switch key {
	case "<commodity>":
		return s.trOr("commodity."+value, value)
	case "<government>":
		return s.TrGovernment(value)
	case "<home planet>", "<planet>":
		return s.trOr("planet.name."+value, value)
	case "<home system>", "<system>":
		return s.trOr("system.name."+value, value)
	default:
		return value
	}
}

// TranslateSubstitutionValues translates the values of a substitution map
// in place for the placeholder keys TrSubstitutionValue recognizes.
func (s *Store) TranslateSubstitutionValues(subs map[string]string) {
	for k, v := range subs {
		subs[k] = s.TrSubstitutionValue(k, v)
	}
}
