package notmain

import "os"

func main() {
	os.Exit(1)
}

func Run() {
	main()
}
