// Command recoversave rebuilds corrupted third-generation handheld save
// images.
package main

func main() {
	execute()
}
