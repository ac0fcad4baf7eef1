package config

import "github.com/spf13/viper"

// setDefaults reproduces the layout of the Vulkan validation layers repository.
func setDefaults(v *viper.Viper) {
	v.SetDefault("root", ".")
	v.SetDefault("database", "layers/vk_validation_error_database.txt")
	v.SetDefault("spec", "Vulkan-Headers/registry/validusage.json")
	v.SetDefault("sources", []string{
		"layers/core_validation.cpp",
		"layers/descriptor_sets.cpp",
		"layers/parameter_validation_utils.cpp",
		"layers/object_tracker_utils.cpp",
		"layers/shader_validation.cpp",
		"layers/buffer_validation.cpp",
	})

	v.SetDefault("generated.directories", []string{"build", "dbuild", "release"})
	v.SetDefault("generated.subdirectory", "layers")
	v.SetDefault("generated.files", []string{"parameter_validation.cpp", "object_tracker.cpp"})

	v.SetDefault("tests.files", []string{"tests/layer_validation_tests.cpp"})
	v.SetDefault("tests.groups", []string{"VkLayerTest", "VkPositiveLayerTest", "VkWsiEnabledLayerTest"})

	//used on purpose at several places
	v.SetDefault("allowed_duplicates", []string{
		"VUID-vkDestroyInstance-instance-00629",
		"VUID-vkDestroyDevice-device-00378",
		"VUID-VkCommandBufferBeginInfo-flags-00055",
		"VUID-VkRenderPassCreateInfo-attachment-00833",
		"VUID-VkPipelineShaderStageCreateInfo-module-parameter",
		"VUID-VkMappedMemoryRange-memory-parameter",
		"VUID-VkImageSubresource-aspectMask-parameter",
		"VUID-VkWriteDescriptorSet-descriptorType-00325",
		"VUID-vkCmdClearColorImage-image-00007",
		"VUID-vkCmdSetScissor-x-00595",
		"VUID-VkSwapchainCreateInfoKHR-surface-parameter",
		"VUID-VkSwapchainCreateInfoKHR-oldSwapchain-parameter",
		"VUID-VkSwapchainCreateInfoKHR-imageFormat-01273",
		"VUID-VkWriteDescriptorSet-descriptorType-00330",
	})
}
