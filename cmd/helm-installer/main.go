package main

import "github.com/kube-tarian/helm-installer/cmd/helm-installer/cmd"

func main() {
	cmd.Execute()
}
