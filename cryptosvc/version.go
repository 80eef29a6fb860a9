package cryptosvc

// TableVersion identifies the Table layout. It changes only when fields are
// added, removed or reordered.
const TableVersion uint64 = 1

func GetVersion() uint64 {
	return TableVersion
}
