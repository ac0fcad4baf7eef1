//go:build !windows

package vuidcheck

import "testing"

func TestPleasantPath(t *testing.T) {
	type args struct {
		absolute string
		root     string
		wd       string
	}
	tests := []struct {
		name string
		args args
		want string
	}{
		{name: "FileInRootFromRoot", args: args{absolute: "/src/vl/file.cpp", root: "/src/vl", wd: "/src/vl"}, want: "file.cpp"},
		{name: "FileInSubFromRoot", args: args{absolute: "/src/vl/layers/file.cpp", root: "/src/vl", wd: "/src/vl"}, want: "layers/file.cpp"},
		{name: "FileInRootFromSub", args: args{absolute: "/src/vl/file.cpp", root: "/src/vl", wd: "/src/vl/scripts"}, want: "../file.cpp"},
		{name: "FileInSiblingFromSub", args: args{absolute: "/src/vl/layers/file.cpp", root: "/src/vl", wd: "/src/vl/scripts"}, want: "../layers/file.cpp"},
		{name: "FileInRootFromDeep", args: args{absolute: "/src/vl/file.cpp", root: "/src/vl", wd: "/src/vl/a/b"}, want: "../../file.cpp"},
		{name: "OutsideRoot", args: args{absolute: "/src/vl/layers/file.cpp", root: "/src/vl", wd: "/"}, want: "root://layers/file.cpp"},
		{name: "BarelyOutsideRoot", args: args{absolute: "/src/vl/layers/file.cpp", root: "/src/vl", wd: "/src"}, want: "root://layers/file.cpp"},
		{name: "SiblingOfRoot", args: args{absolute: "/src/vl/layers/file.cpp", root: "/src/vl", wd: "/src/other"}, want: "root://layers/file.cpp"},
		{name: "TargetOutsideRoot", args: args{absolute: "/opt/build/gen.cpp", root: "/src/vl", wd: "/home"}, want: "/opt/build/gen.cpp"},
		{name: "TargetOutsideRootFromRoot", args: args{absolute: "/src/build/gen.cpp", root: "/src/vl", wd: "/src/vl"}, want: "../build/gen.cpp"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pleasantPath(tt.args.absolute, tt.args.root, tt.args.wd); got != tt.want {
				t.Errorf("pleasantPath() = %v, want %v", got, tt.want)
			}
		})
	}
}
