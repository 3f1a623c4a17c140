package huffman

// CompressSelf compresses text with a CodeTable derived from text's own
// symbol frequencies.  The table is returned alongside the payload because it
// is not stored in the payload; pass it to DecompressSelf.
func CompressSelf(text string) ([]byte, *CodeTable, error) {
	table, err := BuildTable(Count(text))
	if err != nil {
		return nil, nil, err
	}
	payload, err := Pack(text, table)
	if err != nil {
		return nil, nil, err
	}
	return payload, table, nil
}

// DecompressSelf reverses CompressSelf, given the table it returned.
func DecompressSelf(payload []byte, table *CodeTable) (string, error) {
	return Unpack(payload, table)
}

// SharedTable derives the CodeTable used in shared-dictionary mode: the
// symbol frequencies of dictionaryText, extended with a zero count for every
// symbol of targetText that dictionaryText lacks.
func SharedTable(dictionaryText, targetText string) (*CodeTable, error) {
	freq := Count(dictionaryText)
	freq.ExtendWithMissing(targetText)
	return BuildTable(freq)
}

// CompressShared compresses targetText with the table from SharedTable.
func CompressShared(dictionaryText, targetText string) ([]byte, *CodeTable, error) {
	table, err := SharedTable(dictionaryText, targetText)
	if err != nil {
		return nil, nil, err
	}
	payload, err := Pack(targetText, table)
	if err != nil {
		return nil, nil, err
	}
	return payload, table, nil
}

// DecompressShared reverses CompressShared by regenerating the table from the
// same two texts.  Both must be byte-identical to the ones given to
// CompressShared; otherwise the regenerated table differs and decoding fails
// or yields the wrong text.
func DecompressShared(payload []byte, dictionaryText, targetAlphabetSource string) (string, error) {
	table, err := SharedTable(dictionaryText, targetAlphabetSource)
	if err != nil {
		return "", err
	}
	return Unpack(payload, table)
}
