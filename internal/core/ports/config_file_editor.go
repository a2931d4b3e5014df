package ports

/*
ConfigFileEditor defines the interface for the file-level transaction on a
shell configuration file. This is a driven port, implemented by a repository
adapter that knows the managed-section marker format and how to write files
without corrupting unmanaged content.
*/
type ConfigFileEditor interface {
	/*
	   Load reads the full text of the file at path. A missing file is not an
	   error as long as its parent directory exists (first-run case); Load
	   then returns an empty string.
	*/
	Load(path string) (string, error)

	/*
	   LocateBlock scans fileText for the managed-section markers. When both
	   markers are present in order it returns the text before the BEGIN
	   marker, the block text between the markers, the text after the END
	   marker, and found=true. When neither marker is present it returns the
	   whole text as prefix with found=false. A lone or out-of-order marker
	   is a corrupt-marker error.
	*/
	LocateBlock(fileText string) (prefix, blockText, suffix string, found bool, err error)

	/*
	   Write rebuilds the file as prefix + markers + blockText + markers +
	   suffix and writes it atomically (temp file, fsync, rename). Before the
	   first write of a run it copies the original file to <path>.bak.
	*/
	Write(path, prefix, blockText, suffix string) error
}
